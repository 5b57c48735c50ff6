package summary

import (
	"context"

	"github.com/jhoicas/antorcha-inventario/internal/application/dto"
)

// PDFRenderer genera el PDF del resumen.
type PDFRenderer interface {
	RenderSummary(ctx context.Context, s *dto.DailySummaryDTO) ([]byte, error)
}

// Mailer envía correos.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message correo a enviar.
type Message struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Attachment archivo adjunto.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}
