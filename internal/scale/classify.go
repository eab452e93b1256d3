package scale

// classify 在所有包含该得分的分段中选 priority 最高者；priority 相同这种数据录入缺陷
// 用最低 MinScore 作最终裁决。找不到包含得分的分段说明目录数据有缺口。
func classify(s *Scale, normalizedScore float64) (Band, error) {
	var best Band
	found := false

	for _, b := range s.Bands {
		if !b.contains(normalizedScore) {
			continue
		}
		if !found || b.Priority > best.Priority ||
			(b.Priority == best.Priority && b.MinScore < best.MinScore) {
			best = b
		}
		found = true
	}

	if !found {
		return Band{}, &UnclassifiableScoreError{ScaleCode: s.Code, Score: normalizedScore}
	}
	return best, nil
}
