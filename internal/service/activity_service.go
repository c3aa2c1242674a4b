package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mergington-api/config"
	"mergington-api/internal/dto"
	"mergington-api/internal/i18n"
	"mergington-api/internal/model"
	"mergington-api/internal/repository"
	apperrors "mergington-api/pkg/errors"
	"mergington-api/pkg/metrics"
)

// ── 活动模块业务错误 ──

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up")
	ErrActivityFull     = errors.New("activity is full")
)

// ActivityService 活动业务接口
type ActivityService interface {
	// List 返回全部活动的本地化视图，只读且不会失败
	List(ctx context.Context, lang i18n.Lang) dto.ActivityListResponse
	// Signup 为学生报名活动；返回的错误为 *apperrors.Error，Detail 已本地化
	Signup(ctx context.Context, activityName, email string, lang i18n.Lang) (*dto.SignupResponse, error)
}

type activityService struct {
	cfg    *config.ActivityConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService 创建 ActivityService 实例
func NewActivityService(cfg *config.ActivityConfig, repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *activityService) List(ctx context.Context, lang i18n.Lang) dto.ActivityListResponse {
	activities := s.repo.Activity.List(ctx)

	result := make(dto.ActivityListResponse, len(activities))
	for i := range activities {
		result[activities[i].Name] = toActivityResponse(&activities[i], lang)
	}
	return result
}

// ────────────────────── Signup ──────────────────────

func (s *activityService) Signup(ctx context.Context, activityName, email string, lang i18n.Lang) (*dto.SignupResponse, error) {
	activity, err := s.repo.Activity.AddParticipant(ctx, activityName, email, s.cfg.EnforceCapacity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			metrics.SignupsTotal.WithLabelValues("unknown", metrics.ResultNotFound).Inc()
			return nil, apperrors.New(apperrors.KindNotFound, ErrActivityNotFound,
				i18n.T(lang, i18n.ActivityNotFound, nil))
		case errors.Is(err, repository.ErrDuplicateSignup):
			metrics.SignupsTotal.WithLabelValues(activityName, metrics.ResultDuplicate).Inc()
			return nil, apperrors.New(apperrors.KindInvalidRequest, ErrAlreadySignedUp,
				i18n.T(lang, i18n.StudentAlreadySignedUp, nil))
		case errors.Is(err, repository.ErrCapacityExceeded):
			metrics.SignupsTotal.WithLabelValues(activityName, metrics.ResultFull).Inc()
			s.logger.Warn("活动名额已满", zap.String("activity", activityName))
			return nil, apperrors.New(apperrors.KindCapacityExceeded, ErrActivityFull,
				i18n.T(lang, i18n.ActivityFull, nil))
		default:
			s.logger.Error("报名失败", zap.String("activity", activityName), zap.Error(err))
			return nil, err
		}
	}

	metrics.SignupsTotal.WithLabelValues(activityName, metrics.ResultSuccess).Inc()
	metrics.ActivityParticipants.WithLabelValues(activityName).Set(float64(len(activity.Participants)))

	s.logger.Info("报名成功",
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.Int("participants", len(activity.Participants)),
	)

	return &dto.SignupResponse{
		Message: i18n.T(lang, i18n.SignupSuccess, map[string]string{
			"email":         email,
			"activity_name": activityName,
		}),
	}, nil
}

// ── 内部辅助方法 ──

// localized 中文且存在译文时返回译文，否则返回英文
func localized(lang i18n.Lang, en, zh string) string {
	if lang == i18n.ZH && zh != "" {
		return zh
	}
	return en
}

func toActivityResponse(a *model.Activity, lang i18n.Lang) dto.ActivityResponse {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return dto.ActivityResponse{
		Description:     localized(lang, a.Description, a.DescriptionZh),
		Schedule:        localized(lang, a.Schedule, a.ScheduleZh),
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}
