package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/notify"
	"github.com/MKhiriev/dingus-admin/internal/utils"
	"github.com/MKhiriev/dingus-admin/internal/validators"
	"github.com/MKhiriev/dingus-admin/models"
	"github.com/rs/zerolog"
)

// formSubmitter runs one submit interaction for a form value of type T:
// validate, send, map the result to an Outcome and notify once.
type formSubmitter[T any] struct {
	name      string
	validator validators.Validator
	send      func(ctx context.Context, value T) error
	notifier  notify.Notifier
	messages  outcomeMessages

	state    atomic.Int32
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func newFormSubmitter[T any](
	name string,
	validator validators.Validator,
	send func(ctx context.Context, value T) error,
	notifier notify.Notifier,
	messages outcomeMessages,
	log *logger.Logger,
) *formSubmitter[T] {
	if notifier == nil {
		notifier = notify.NewWriterNotifier(nil)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &formSubmitter[T]{
		name:      name,
		validator: validator,
		send:      send,
		notifier:  notifier,
		messages:  messages,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    log,
	}
}

func (s *formSubmitter[T]) State() SubmitState {
	return SubmitState(s.state.Load())
}

func (s *formSubmitter[T]) Submit(ctx context.Context, value T) (models.Outcome, error) {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateValidating)) {
		s.logger.Debug().Str("form", s.name).Msg("submit ignored, previous one still running")
		return models.Outcome{}, ErrSubmitInProgress
	}
	defer s.state.Store(int32(StateIdle))

	if _, ok := utils.GetTraceIDFromContext(ctx); !ok {
		ctx = utils.WithTraceID(ctx, s.traceIDs.Generate())
	}
	traceID, _ := utils.GetTraceIDFromContext(ctx)
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("form", s.name).Str("trace_id", traceID)
	})

	outcome := s.run(ctx, value, log)

	if err := s.notifier.Notify(ctx, outcome); err != nil {
		log.Warn().Err(err).Msg("outcome notification failed")
	}

	return outcome, nil
}

func (s *formSubmitter[T]) run(ctx context.Context, value T, log *logger.Logger) models.Outcome {
	if err := s.validator.Validate(ctx, value); err != nil {
		outcome := validationOutcome(err, s.messages)
		log.Info().
			Err(err).
			Ints("rows", outcome.Rows).
			Msg("submission rejected by validation")
		return outcome
	}

	s.state.Store(int32(StateSubmitting))

	err := s.send(ctx, value)
	outcome := requestOutcome(err, s.messages)
	if err != nil {
		log.Error().Err(err).Str("message", outcome.Message).Msg("submission failed")
	} else {
		log.Info().Msg("submission accepted")
	}

	return outcome
}
