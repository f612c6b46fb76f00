package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"applicant_review_system/internal/db/models"
	"applicant_review_system/internal/db/repositories"
	"applicant_review_system/internal/tally"

	"go.uber.org/zap"
)

var ErrWriteConflict = errors.New("tally could not be saved after concurrent updates")

// EffectDispatcher runs verdict effects for a persisted applicant and returns
// warnings to append to the response message.
//
//go:generate mockgen -source=approval_service.go -destination=mocks/approval_service.go -package=mock_services
type EffectDispatcher interface {
	Dispatch(ctx context.Context, applicant *models.Applicant, effects []tally.Effect) []string
}

type CastVoteRequest struct {
	PartitionKey string
	RowKey       string
	Voter        string
	Action       tally.Action
}

// Tally is the review state of one applicant after a read or a vote.
type Tally struct {
	PartitionKey string
	RowKey       string
	Action       tally.Action
	Thresholds   tally.Thresholds
	Votes        tally.Votes
	Summary      tally.Summary
	Reached      bool
	Message      string
}

type ApprovalService interface {
	CastVote(ctx context.Context, request CastVoteRequest) (Tally, error)
	GetTally(ctx context.Context, partitionKey, rowKey string) (Tally, error)
}

type approvalService struct {
	applicants repositories.ApplicantRepository
	admins     AdminDirectory
	dispatcher EffectDispatcher
	engine     tally.Engine
	maxRetries int
	logger     *zap.SugaredLogger
}

func NewApprovalService(
	applicants repositories.ApplicantRepository,
	admins AdminDirectory,
	dispatcher EffectDispatcher,
	engine tally.Engine,
	maxRetries int,
	logger *zap.SugaredLogger,
) ApprovalService {
	return &approvalService{
		applicants: applicants,
		admins:     admins,
		dispatcher: dispatcher,
		engine:     engine,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (s *approvalService) CastVote(ctx context.Context, request CastVoteRequest) (Tally, error) {
	ballot := tally.Ballot{Voter: request.Voter, Action: request.Action}
	var thresholds *tally.Thresholds

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		applicant, err := s.applicants.GetOne(ctx, request.PartitionKey, request.RowKey)
		if err != nil {
			return Tally{}, err
		}

		if thresholds == nil {
			computed := tally.ComputeThresholds(s.admins.AdminCount(ctx))
			thresholds = &computed
		}

		votes := applicant.Votes()
		outcome, err := s.engine.Cast(&votes, ballot, *thresholds)
		if err != nil {
			return Tally{}, err
		}

		applicant.SetVotes(votes)
		err = s.applicants.Replace(ctx, applicant)
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.logger.Infow("applicant changed during vote, retrying",
				"partitionKey", request.PartitionKey,
				"rowKey", request.RowKey,
				"attempt", attempt+1,
			)
			continue
		}
		if err != nil {
			return Tally{}, fmt.Errorf("failed to save applicant: %w", err)
		}

		s.logger.Infow("vote recorded",
			"partitionKey", request.PartitionKey,
			"rowKey", request.RowKey,
			"voter", ballot.Voter,
			"action", ballot.Action,
			"switched", outcome.Switched,
			"reached", outcome.Reached,
		)

		message := outcome.Message
		if len(outcome.Effects) > 0 {
			warnings := s.dispatcher.Dispatch(ctx, applicant, outcome.Effects)
			if len(warnings) > 0 {
				message = message + " " + strings.Join(warnings, " ")
			}
		}

		return Tally{
			PartitionKey: applicant.PartitionKey,
			RowKey:       applicant.RowKey,
			Action:       outcome.Action,
			Thresholds:   outcome.Thresholds,
			Votes:        outcome.Votes,
			Summary:      outcome.Summary,
			Reached:      outcome.Reached,
			Message:      message,
		}, nil
	}

	return Tally{}, fmt.Errorf("%w: %s/%s", ErrWriteConflict, request.PartitionKey, request.RowKey)
}

func (s *approvalService) GetTally(ctx context.Context, partitionKey, rowKey string) (Tally, error) {
	applicant, err := s.applicants.GetOne(ctx, partitionKey, rowKey)
	if err != nil {
		return Tally{}, err
	}

	thresholds := tally.ComputeThresholds(s.admins.AdminCount(ctx))
	votes := applicant.Votes()

	return Tally{
		PartitionKey: applicant.PartitionKey,
		RowKey:       applicant.RowKey,
		Thresholds:   thresholds,
		Votes:        votes,
		Summary:      tally.Summarize(votes, thresholds),
		Message:      "Current tally",
	}, nil
}
