package service

import (
	"bytes"
	"fmt"
	"mindwell_backend/internal/model"
	"time"

	"github.com/signintech/gopdf"
)

// ReportService 生成用户评估历史的 PDF 报告
type ReportService struct {
	FontPaths []string
}

func NewReportService() *ReportService {
	return &ReportService{
		FontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

// HistoryPDF 把一个用户的全部评估记录渲染为一份 PDF
func (s *ReportService) HistoryPDF(user *model.User, records []model.AssessmentRecord) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := s.loadFont(&pdf); err != nil {
		return nil, err
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Assessment History Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Name: %s", user.Name))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Br(25)

	if len(records) == 0 {
		pdf.Cell(nil, "No assessments recorded.")
	}

	for _, record := range records {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil {
			return nil, err
		}
		pdf.Cell(nil, fmt.Sprintf("%s — %s", record.ScaleName, record.CreatedAt.Format("2006-01-02")))
		pdf.Br(16)

		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return nil, err
		}
		pdf.Cell(nil, fmt.Sprintf("Score: %g / %d (raw %d)", record.NormalizedScore, record.MaxScore, record.RawScore))
		pdf.Br(14)
		pdf.Cell(nil, fmt.Sprintf("Severity: %s", record.Label))
		pdf.Br(14)

		for _, line := range []string{record.Interpretation, record.Recommendation} {
			if line == "" {
				continue
			}
			wrapped, _ := pdf.SplitText(line, 500)
			for _, part := range wrapped {
				pdf.Cell(nil, part)
				pdf.Br(13)
			}
		}
		pdf.Br(10)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportService) loadFont(pdf *gopdf.GoPdf) error {
	var lastErr error
	for _, path := range s.FontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("failed to load report font, ensure dejavu fonts are installed: %w", lastErr)
}
