package repository

import (
	"context"
	"errors"
	"sync"

	"mergington-api/internal/model"
)

var (
	ErrNotFound         = errors.New("activity not found")
	ErrDuplicateSignup  = errors.New("participant already signed up")
	ErrCapacityExceeded = errors.New("activity is full")
)

// ActivityRepository 活动数据访问接口
// 返回值均为副本，调用方修改不会影响存储
type ActivityRepository interface {
	List(ctx context.Context) []model.Activity
	// AddParticipant 原子地完成"查重 + (可选)容量校验 + 追加"
	AddParticipant(ctx context.Context, name, email string, enforceCapacity bool) (*model.Activity, error)
}

// activityEntry 单个活动及其互斥锁，报名只锁定对应活动
type activityEntry struct {
	mu       sync.Mutex
	activity model.Activity
}

type activityRepo struct {
	// 构造后键集合不再变化，map 本身无需加锁
	entries map[string]*activityEntry
	order   []string
}

// NewActivityRepo 创建内存 ActivityRepository，保留 seed 的顺序
func NewActivityRepo(seed []model.Activity) ActivityRepository {
	r := &activityRepo{
		entries: make(map[string]*activityEntry, len(seed)),
		order:   make([]string, 0, len(seed)),
	}
	for i := range seed {
		a := seed[i].Clone()
		if _, exists := r.entries[a.Name]; exists {
			continue
		}
		r.entries[a.Name] = &activityEntry{activity: a}
		r.order = append(r.order, a.Name)
	}
	return r
}

func (r *activityRepo) List(_ context.Context) []model.Activity {
	result := make([]model.Activity, 0, len(r.order))
	for _, name := range r.order {
		e := r.entries[name]
		e.mu.Lock()
		result = append(result, e.activity.Clone())
		e.mu.Unlock()
	}
	return result
}

func (r *activityRepo) AddParticipant(_ context.Context, name, email string, enforceCapacity bool) (*model.Activity, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activity.HasParticipant(email) {
		return nil, ErrDuplicateSignup
	}
	if enforceCapacity && e.activity.IsFull() {
		return nil, ErrCapacityExceeded
	}

	e.activity.Participants = append(e.activity.Participants, email)

	a := e.activity.Clone()
	return &a, nil
}
