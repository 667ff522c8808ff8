package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/pkg/delivery"
)

// deliveryService adapts delivery.Engine to the service.Service interface.
type deliveryService struct {
	engine  *delivery.Engine
	workers int
}

func newDeliveryService(engine *delivery.Engine, workers int) *deliveryService {
	return &deliveryService{engine: engine, workers: workers}
}

func (s *deliveryService) Start() {
	s.engine.Start(s.workers)
}

func (s *deliveryService) Stop() {
	s.engine.Stop()
}

// templateRenderer renders stored templates for the delivery engine.
type templateRenderer struct {
	svcCtx *svc.ServiceContext
}

func newTemplateRenderer(svcCtx *svc.ServiceContext) *templateRenderer {
	return &templateRenderer{svcCtx: svcCtx}
}

// RenderMessage loads a template and renders it with its stored layout.
// A template that is gone or no longer renders fails permanently.
func (r *templateRenderer) RenderMessage(ctx context.Context, templateID int64) (*delivery.Message, error) {
	row, err := r.svcCtx.Templates.FindOne(ctx, templateID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("%w: template %d not found", delivery.ErrPermanent, templateID)
	}
	if err != nil {
		return nil, err
	}

	lay, err := row.Layout()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", delivery.ErrPermanent, err)
	}

	html, err := r.svcCtx.Layouts.Render(lay, row.Fields())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", delivery.ErrPermanent, err)
	}

	return &delivery.Message{Subject: row.Subject, HTML: html}, nil
}
