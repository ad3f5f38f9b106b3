package worker

// receipt_worker.go
// Processes receipt jobs from QueueReceipt: generates the order receipt PDF
// and emails it to the customer. Failures go to the DLQ, never back to the
// purchase path — receipts are strictly best-effort.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/infra"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/rs/zerolog/log"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipt.
type ReceiptJobPayload struct {
	Order   model.Order `json:"order"`
	ToEmail string      `json:"to_email"`
}

// ReceiptWorker renders and delivers order receipts.
type ReceiptWorker struct {
	mailer      *infra.Mailer
	storagePath string
}

func NewReceiptWorker(mailer *infra.Mailer, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{mailer: mailer, storagePath: storagePath}
}

// Process generates the PDF and sends it. The PDF is kept on disk either way
// so a bounced email can be re-sent by hand.
func (w *ReceiptWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("receipt_worker: invalid payload: %w", err)
	}

	pdfPath, err := infra.GenerateReceiptPDF(&payload.Order, w.storagePath)
	if err != nil {
		return fmt.Errorf("receipt_worker: generate pdf: %w", err)
	}
	log.Info().Str("path", pdfPath).Int64("order_id", payload.Order.ID).Msg("receipt_worker: pdf generated")

	if payload.ToEmail == "" {
		log.Warn().Int64("order_id", payload.Order.ID).Msg("receipt_worker: no customer email — keeping pdf only")
		return nil
	}

	subject := fmt.Sprintf("Your Mechanic order MEC-%d", payload.Order.ID)
	body := fmt.Sprintf("Thank you %s — your order for %s (x%d) has been received.",
		payload.Order.CustomerName, payload.Order.ItemName, payload.Order.Quantity)

	if err := w.mailer.SendReceipt(payload.ToEmail, subject, body, pdfPath); err != nil {
		return fmt.Errorf("receipt_worker: send email: %w", err)
	}
	log.Info().Str("to", payload.ToEmail).Int64("order_id", payload.Order.ID).Msg("receipt_worker: receipt sent")
	return nil
}
