package memory

import (
	"time"

	"crm-hub-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const summaryKey = "dashboard_summary"

type DashboardCache struct {
	cache *cache.Cache
}

func NewDashboardCache(ttl time.Duration) *DashboardCache {
	// Purge interval stays coarse; summaries are cheap to rebuild.
	c := cache.New(ttl, 2*ttl)
	return &DashboardCache{
		cache: c,
	}
}

func (r *DashboardCache) Save(summary *entity.DashboardSummary) {
	r.cache.Set(summaryKey, summary, cache.DefaultExpiration)
}

func (r *DashboardCache) Get() (*entity.DashboardSummary, bool) {
	if x, found := r.cache.Get(summaryKey); found {
		return x.(*entity.DashboardSummary), true
	}
	return nil, false
}

// Invalidate drops the cached summary so the next read rebuilds it.
func (r *DashboardCache) Invalidate() {
	r.cache.Delete(summaryKey)
}
