// Package mail implementa el envío del reporte de stock por SMTP usando
// gomail, con el PDF adjunto y el cuerpo HTML renderizado con html/template.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/inventorywise/api/internal/application/dto"
	appreport "github.com/inventorywise/api/internal/application/report"
	"github.com/inventorywise/api/pkg/config"
)

var _ appreport.EmailSender = (*GomailSender)(nil)

const attachmentName = "low_stock_report.pdf"

// GomailSender implementa report.EmailSender sobre SMTP.
type GomailSender struct {
	cfg  config.SMTPConfig
	tmpl *template.Template
}

// NewGomailSender construye el sender; parsea la plantilla del cuerpo una vez.
func NewGomailSender(cfg config.SMTPConfig) (*GomailSender, error) {
	tmpl, err := template.New("stock_report").Parse(bodyTemplate)
	if err != nil {
		return nil, fmt.Errorf("mail: parsear plantilla: %w", err)
	}
	return &GomailSender{cfg: cfg, tmpl: tmpl}, nil
}

// SendStockReport envía el reporte a los destinatarios con el PDF adjunto.
func (s *GomailSender) SendStockReport(ctx context.Context, recipients []string, report *dto.StockReportDTO, pdf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, report); err != nil {
		return fmt.Errorf("mail: renderizar cuerpo: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("Bcc", recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Low Stock Alert - %d Products Need Attention", report.LowStockCount))
	m.SetBody("text/html", body.String())
	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar reporte: %w", err)
	}
	return nil
}
