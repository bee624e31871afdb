package contracts

import (
	"context"
	"time"
)

// ActivityEngine derives reminder activities from the current lease book.
// Generate runs one full pass for the given reference date and returns
// the activities that were successfully persisted.
// ⭐ SSOT: 활동 생성 엔진 인터페이스
type ActivityEngine interface {
	Generate(ctx context.Context, today time.Time) ([]*Activity, error)
}
