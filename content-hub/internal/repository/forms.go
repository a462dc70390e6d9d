package repository

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/normalize"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

// ErrInvalidSubmission is returned for a form missing a required field.
var ErrInvalidSubmission = errors.New("invalid submission")

// Forms posts contact and newsletter submissions and reads the admin
// dashboard.
type Forms struct {
	transport Transport
	log       logger.Logger
}

func NewForms(transport Transport, log logger.Logger) *Forms {
	return &Forms{transport: transport, log: log}
}

func (f *Forms) SubmitContact(ctx context.Context, msg models.ContactSubmission) (models.Receipt, error) {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Message) == "" {
		return models.Receipt{}, fmt.Errorf("%w: name and message are required", ErrInvalidSubmission)
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return models.Receipt{}, fmt.Errorf("%w: email: %w", ErrInvalidSubmission, err)
	}
	return f.submit(ctx, "/api/contact", msg)
}

func (f *Forms) Subscribe(ctx context.Context, sub models.Subscription) (models.Receipt, error) {
	if _, err := mail.ParseAddress(sub.Email); err != nil {
		return models.Receipt{}, fmt.Errorf("%w: email: %w", ErrInvalidSubmission, err)
	}
	return f.submit(ctx, "/api/newsletter", sub)
}

func (f *Forms) submit(ctx context.Context, endpoint string, form any) (models.Receipt, error) {
	payload, err := normalize.ToMap(form)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("encode %s: %w", endpoint, err)
	}
	res, err := f.transport.Submit(ctx, endpoint, payload)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("submit %s: %w", endpoint, err)
	}

	var receipt models.Receipt
	if err := decodeLoose(res, &receipt); err != nil {
		f.log.Warn("Unreadable submission receipt", logger.String("endpoint", endpoint), logger.Error(err))
	}
	return receipt, nil
}

// Dashboard returns the admin counts. Missing counts read as zero.
func (f *Forms) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	res, err := f.transport.Fetch(ctx, "/api/dashboard")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("fetch dashboard: %w", err)
	}

	stats := models.DashboardStats{Counts: map[string]int{}}
	if err := decodeLoose(res, &stats); err != nil {
		return models.DashboardStats{}, fmt.Errorf("decode dashboard: %w", err)
	}
	if stats.Counts == nil {
		stats.Counts = map[string]int{}
	}
	return stats, nil
}

// decodeLoose decodes backend documents whose numbers may arrive as strings.
func decodeLoose(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
