package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/storage"
)

// persister is the thin persistence decorator shared by every store.
// Mutations apply to the in-memory collection first and then call
// persist; a failed save is logged and otherwise ignored, so the
// mutation that triggered it still succeeds. Loading works the same
// way: any failure is reported as "no prior state".
type persister struct {
	adapter storage.Adapter
	logger  *zap.Logger
	key     string
}

// persist serializes v and writes it under the store's key,
// best-effort.
func (p *persister) persist(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("serializing store state",
			zap.String("key", p.key), zap.Error(err))
		return
	}
	if err := p.adapter.Save(p.key, data); err != nil {
		p.logger.Warn("persisting store state",
			zap.String("key", p.key), zap.Error(err))
	}
}

// hydrate loads the store's document into v. It returns true only when
// a prior document existed and parsed cleanly; every failure mode
// degrades to "start from defaults".
func (p *persister) hydrate(v interface{}) bool {
	data, ok, err := p.adapter.Load(p.key)
	if err != nil {
		p.logger.Warn("loading store state",
			zap.String("key", p.key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		p.logger.Warn("parsing persisted store state",
			zap.String("key", p.key), zap.Error(err))
		return false
	}
	return true
}
