package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"runtime/debug"
	"sync"
	"time"

	"darwinplanner/internal/models/response_models"
	"darwinplanner/internal/planner"
	"darwinplanner/pkg/logger"
	mem "darwinplanner/pkg/memcache"
	"darwinplanner/pkg/metrics"
	"darwinplanner/pkg/utils"
	"github.com/google/uuid"
)

const (
	PlanReadyMessage    = "Your Darwin travel plan is ready! You can find it under My Trips."
	PlanNotSavedMessage = "Your Darwin travel plan is ready, but it could not be saved to My Trips right now."

	sessionLockStripes = 64
)

type ConversationServiceInterface interface {
	Start(ctx context.Context, ownerID uuid.UUID) (response_models.Conversation, error)
	Get(ctx context.Context, ownerID uuid.UUID, sessionID string) (response_models.Conversation, error)
	// Submit returns the unchanged conversation together with the error
	// when an answer is rejected.
	Submit(ctx context.Context, ownerID uuid.UUID, sessionID, answer string) (response_models.Conversation, error)
	Reset(ctx context.Context, ownerID uuid.UUID, sessionID string) (response_models.Conversation, error)
	// Discard drops the conversation. A generation still running is left to
	// finish and its plan is kept in My Trips.
	Discard(ctx context.Context, ownerID uuid.UUID, sessionID string) error
}

// Dispatcher runs a plan generation outside the request that triggered it.
type Dispatcher func(task func())

func GoDispatcher(task func()) { go task() }

type conversationSession struct {
	ID      string                         `json:"id"`
	OwnerID uuid.UUID                      `json:"owner_id"`
	State   planner.ConversationState      `json:"state"`
	Plan    *response_models.GeneratedPlan `json:"plan,omitempty"`
	Failure string                         `json:"failure,omitempty"`
}

type ConversationService struct {
	collector    *planner.Collector
	sessions     mem.SessionStore
	orchestrator PlanOrchestratorInterface
	dispatch     Dispatcher
	timeout      time.Duration
	log          *logger.Logger
	locks        [sessionLockStripes]sync.Mutex
}

func NewConversationService(
	collector *planner.Collector,
	sessions mem.SessionStore,
	orchestrator PlanOrchestratorInterface,
	dispatch Dispatcher,
	timeout time.Duration,
	log *logger.Logger,
) ConversationServiceInterface {
	if dispatch == nil {
		dispatch = GoDispatcher
	}
	return &ConversationService{
		collector:    collector,
		sessions:     sessions,
		orchestrator: orchestrator,
		dispatch:     dispatch,
		timeout:      timeout,
		log:          log,
	}
}

func (s *ConversationService) Start(ctx context.Context, ownerID uuid.UUID) (response_models.Conversation, error) {
	sess := &conversationSession{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		State:   s.collector.Start(),
	}
	if err := s.save(ctx, sess); err != nil {
		return response_models.Conversation{}, err
	}
	s.log.Debug("conversation started", "session_id", sess.ID, "owner_id", ownerID.String())
	return conversationView(sess, planner.GreetingMessage), nil
}

func (s *ConversationService) Get(ctx context.Context, ownerID uuid.UUID, sessionID string) (response_models.Conversation, error) {
	sess, err := s.load(ctx, ownerID, sessionID)
	if err != nil {
		return response_models.Conversation{}, err
	}
	return conversationView(sess, ""), nil
}

func (s *ConversationService) Submit(ctx context.Context, ownerID uuid.UUID, sessionID, answer string) (response_models.Conversation, error) {
	view, next, start, err := s.submitLocked(ctx, ownerID, sessionID, answer)
	if start {
		s.dispatch(func() { s.generate(ownerID, sessionID, next) })
	}
	return view, err
}

func (s *ConversationService) submitLocked(ctx context.Context, ownerID uuid.UUID, sessionID, answer string) (response_models.Conversation, planner.ConversationState, bool, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.load(ctx, ownerID, sessionID)
	if err != nil {
		return response_models.Conversation{}, planner.ConversationState{}, false, err
	}

	step := sess.State.Step
	next, reply, err := s.collector.Submit(sess.State, answer)
	if err != nil {
		result := "rejected"
		if errors.Is(err, planner.ErrBusy) {
			result = "busy"
		}
		metrics.ConversationAnswers.WithLabelValues(step.String(), result).Inc()
		return conversationView(sess, ""), planner.ConversationState{}, false, err
	}

	if !reply.Advanced {
		metrics.ConversationAnswers.WithLabelValues(step.String(), "ignored").Inc()
		return conversationView(sess, reply.Prompt), planner.ConversationState{}, false, nil
	}
	metrics.ConversationAnswers.WithLabelValues(step.String(), "accepted").Inc()

	sess.State = next
	if reply.GenerationRequested {
		sess.Plan = nil
		sess.Failure = ""
	}
	if err := s.save(ctx, sess); err != nil {
		return response_models.Conversation{}, planner.ConversationState{}, false, err
	}
	return conversationView(sess, reply.Prompt), next, reply.GenerationRequested, nil
}

func (s *ConversationService) Reset(ctx context.Context, ownerID uuid.UUID, sessionID string) (response_models.Conversation, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.load(ctx, ownerID, sessionID)
	if err != nil {
		return response_models.Conversation{}, err
	}

	state, err := s.collector.Reset(sess.State)
	if err != nil {
		return conversationView(sess, ""), err
	}
	sess.State = state
	sess.Plan = nil
	sess.Failure = ""
	if err := s.save(ctx, sess); err != nil {
		return response_models.Conversation{}, err
	}
	return conversationView(sess, planner.GreetingMessage), nil
}

func (s *ConversationService) Discard(ctx context.Context, ownerID uuid.UUID, sessionID string) error {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.load(ctx, ownerID, sessionID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.log.Error("deleting conversation", "session_id", sessionID, "error", err)
		return fmt.Errorf("%w: %v", planner.ErrUnavailable, err)
	}
	s.log.Debug("conversation discarded", "session_id", sessionID, "owner_id", ownerID.String())
	return nil
}

// generate runs detached from the request context and settles the
// conversation with whatever the orchestrator produced.
func (s *ConversationService) generate(ownerID uuid.UUID, sessionID string, state planner.ConversationState) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	log := s.log.With("session_id", sessionID)
	outcome, genErr := s.runOrchestrator(ctx, ownerID, sessionID, state, log)

	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	// the request context is gone; settle on a fresh one
	storeCtx, storeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer storeCancel()

	sess, err := s.load(storeCtx, ownerID, sessionID)
	if err != nil {
		log.Warn("conversation vanished before generation settled", "error", err)
		return
	}

	var message string
	switch {
	case genErr == nil:
		sess.Plan = generatedPlan(outcome)
		message = PlanReadyMessage
	case outcome != nil:
		sess.Plan = generatedPlan(outcome)
		message = PlanNotSavedMessage
	default:
		log.Error("plan generation failed", "error", genErr)
		sess.Failure = planner.GenerationFailedMessage
		message = planner.GenerationFailedMessage
	}

	sess.State = s.collector.Settle(sess.State, message)
	if err := s.save(storeCtx, sess); err != nil {
		log.Error("saving settled conversation", "error", err)
	}
}

// runOrchestrator turns a panic into a generation failure so the session
// is still settled and can be reset.
func (s *ConversationService) runOrchestrator(
	ctx context.Context,
	ownerID uuid.UUID,
	sessionID string,
	state planner.ConversationState,
	log *logger.Logger,
) (outcome *PlanOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("plan generation panicked", "panic", r, "stack", string(debug.Stack()))
			outcome, err = nil, fmt.Errorf("%w: panic: %v", planner.ErrGeneration, r)
		}
	}()
	return s.orchestrator.Generate(ctx, ownerID, sessionID, state)
}

func (s *ConversationService) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%sessionLockStripes]
}

func (s *ConversationService) load(ctx context.Context, ownerID uuid.UUID, sessionID string) (*conversationSession, error) {
	data, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, mem.ErrSessionMissing) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		s.log.Error("reading conversation", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("%w: %v", planner.ErrUnavailable, err)
	}

	var sess conversationSession
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Error("decoding conversation", "session_id", sessionID, "error", err)
		return nil, utils.ErrSessionNotFound
	}
	if sess.OwnerID != ownerID {
		return nil, utils.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *ConversationService) save(ctx context.Context, sess *conversationSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding conversation: %w", err)
	}
	if err := s.sessions.Set(ctx, sess.ID, data); err != nil {
		s.log.Error("writing conversation", "session_id", sess.ID, "error", err)
		return fmt.Errorf("%w: %v", planner.ErrUnavailable, err)
	}
	return nil
}

func generatedPlan(outcome *PlanOutcome) *response_models.GeneratedPlan {
	plan := &response_models.GeneratedPlan{
		Title:    outcome.Title,
		Content:  outcome.Content,
		Mentions: mentionResult(outcome.Mentions),
		Saved:    outcome.Saved,
	}
	if outcome.Saved {
		plan.PlanID = outcome.PlanID.String()
	}
	return plan
}

func conversationView(sess *conversationSession, reply string) response_models.Conversation {
	state := sess.State
	req := state.Request

	messages := make([]response_models.ConversationMessage, 0, len(state.Transcript))
	for _, m := range state.Transcript {
		messages = append(messages, response_models.ConversationMessage{
			Role:    m.Role,
			Content: m.Content,
			At:      utils.FormatRFC3339Darwin(m.At),
		})
	}

	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}
	request := response_models.TripRequest{
		Season:        string(req.Season()),
		DurationDays:  req.DurationDays,
		Budget:        req.Budget,
		DepartureCity: req.DepartureCity,
		Interests:     interests,
		Preferences:   req.Preferences,
	}
	if req.HasDate() {
		request.TravelDate = req.TravelDate.Format("2006-01-02")
	}

	return response_models.Conversation{
		ID:                 sess.ID,
		CurrentStep:        int(state.Step),
		TotalSteps:         planner.QuestionCount,
		StepLabel:          state.Step.String(),
		StepLabels:         planner.StepLabels(),
		Completed:          state.Step == planner.StepDone,
		GenerationInFlight: state.GenerationInFlight,
		Reply:              reply,
		Request:            request,
		Messages:           messages,
		Plan:               sess.Plan,
		Failure:            sess.Failure,
	}
}
