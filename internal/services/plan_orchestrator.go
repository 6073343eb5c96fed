package services

import (
	"context"
	"fmt"
	"time"

	"darwinplanner/internal/models/db_models"
	"darwinplanner/internal/planner"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/metrics"
	"darwinplanner/pkg/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CatalogSnapshotter and PlanRecorder are the slices of the catalog and
// travel plan services the orchestrator needs.
type CatalogSnapshotter interface {
	Snapshot(ctx context.Context) (planner.Catalog, error)
}

type PlanRecorder interface {
	CreatePlan(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error)
}

// PlanOutcome is the generated plan text and what it refers to. Saved is
// false when the text was produced but could not be stored.
type PlanOutcome struct {
	PlanID   uuid.UUID
	Title    string
	Content  string
	Mentions planner.MatchResult
	Saved    bool
}

type PlanOrchestratorInterface interface {
	Generate(ctx context.Context, ownerID uuid.UUID, sessionID string, state planner.ConversationState) (*PlanOutcome, error)
}

type PlanOrchestrator struct {
	catalog CatalogSnapshotter
	oracle  utils.GenerationClientInterface
	plans   PlanRecorder
	log     *logger.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

func NewPlanOrchestrator(
	catalog CatalogSnapshotter,
	oracle utils.GenerationClientInterface,
	plans PlanRecorder,
	log *logger.Logger,
) PlanOrchestratorInterface {
	return &PlanOrchestrator{
		catalog: catalog,
		oracle:  oracle,
		plans:   plans,
		log:     log,
		tracer:  otel.Tracer("darwinplanner/services"),
		now:     time.Now,
	}
}

// Generate composes the prompt from a completed conversation, asks the
// oracle for a grounded plan, resolves the catalog entities it mentions
// and stores the result. A storage failure still returns the outcome,
// alongside an ErrUnavailable error.
func (o *PlanOrchestrator) Generate(ctx context.Context, ownerID uuid.UUID, sessionID string, state planner.ConversationState) (*PlanOutcome, error) {
	ctx, span := o.tracer.Start(ctx, "PlanOrchestrator.Generate",
		trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()

	if state.Step != planner.StepDone {
		return nil, planner.ErrNotReady
	}

	start := o.now()
	metrics.GenerationsInFlight.Inc()
	defer metrics.GenerationsInFlight.Dec()

	log := o.log.With("session_id", sessionID, "owner_id", ownerID.String())
	req := state.Request

	catalog, err := o.catalog.Snapshot(ctx)
	if err != nil {
		o.finish(span, start, metrics.OutcomeUnavailable, err)
		log.Error("catalog snapshot failed", "error", err)
		return nil, fmt.Errorf("%w: catalog snapshot: %v", planner.ErrUnavailable, err)
	}

	prompt := planner.Compose(req, catalog, o.now())
	span.SetAttributes(
		attribute.Int("catalog.size", catalog.Len()),
		attribute.Int("prompt.length", len(prompt)),
	)

	text, err := o.oracle.Generate(ctx, prompt, true)
	if err != nil {
		o.finish(span, start, metrics.OutcomeGeneration, err)
		log.Error("plan generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", planner.ErrGeneration, err)
	}

	mentions := planner.ResolveCatalog(text, catalog)
	metrics.CatalogMentions.WithLabelValues(string(planner.KindAttraction)).
		Observe(float64(len(mentions.OfKind(planner.KindAttraction))))
	metrics.CatalogMentions.WithLabelValues(string(planner.KindRestaurant)).
		Observe(float64(len(mentions.OfKind(planner.KindRestaurant))))

	outcome := &PlanOutcome{
		Title:    req.Title(),
		Content:  text,
		Mentions: mentions,
	}

	record := &db_models.TravelPlan{
		OwnerID:       ownerID,
		SessionID:     sessionID,
		PlanName:      req.Title(),
		DepartureCity: req.DepartureCity,
		TravelDate:    req.TravelDate.Format("2006-01-02"),
		DurationDays:  req.DurationDays,
		Budget:        req.Budget,
		IsWetSeason:   req.Season().IsWet(),
		Interests:     jsonList(req.Interests),
		Preferences:   req.Summary(),
		Content:       text,
		Status:        db_models.PlanStatusPlanning,
		AttractionIDs: jsonList(mentions.IDs(planner.KindAttraction)),
		RestaurantIDs: jsonList(mentions.IDs(planner.KindRestaurant)),
	}

	id, err := o.plans.CreatePlan(ctx, record)
	if err != nil {
		o.finish(span, start, metrics.OutcomeStore, err)
		log.Error("saving generated plan failed", "error", err)
		return outcome, fmt.Errorf("%w: saving plan: %v", planner.ErrUnavailable, err)
	}

	outcome.PlanID = id
	outcome.Saved = true
	o.finish(span, start, metrics.OutcomeSuccess, nil)
	log.Info("travel plan generated",
		"plan_id", id.String(),
		"attractions", len(mentions.OfKind(planner.KindAttraction)),
		"restaurants", len(mentions.OfKind(planner.KindRestaurant)),
		"took", o.now().Sub(start).String(),
	)
	return outcome, nil
}

func (o *PlanOrchestrator) finish(span trace.Span, start time.Time, outcome string, err error) {
	metrics.PlanGenerations.WithLabelValues(outcome).Inc()
	metrics.PlanGenerationDuration.WithLabelValues(outcome).Observe(o.now().Sub(start).Seconds())
	span.SetAttributes(attribute.String("generation.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
}
