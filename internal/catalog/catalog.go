// Package catalog loads the static event-definition file and exposes the
// currently active event. The catalog is immutable after load.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/starfest/internal/domain/model"
)

// Catalog holds all known events keyed by id plus the id of the single
// active event, if any.
type Catalog struct {
	events   map[string]model.Event
	order    []string
	activeID string
}

// fileSchema mirrors the YAML event-definition document.
type fileSchema struct {
	Events []model.Event `koanf:"events"`
}

// Load parses and validates the event-definition file at path. A missing or
// malformed file, duplicate event ids, empty team rosters, or more than one
// active event all fail the load; catalog failures are fatal at startup.
func Load(ctx context.Context, path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}

	var doc fileSchema
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}

	c := &Catalog{events: make(map[string]model.Event, len(doc.Events))}
	for i, ev := range doc.Events {
		if strings.TrimSpace(ev.ID) == "" {
			return nil, fmt.Errorf("%w: events[%d] missing id", ErrInvalidCatalog, i)
		}
		if _, dup := c.events[ev.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate event id %q", ErrInvalidCatalog, ev.ID)
		}
		if len(ev.Teams) == 0 {
			return nil, fmt.Errorf("%w: event %q has no teams", ErrInvalidCatalog, ev.ID)
		}
		for teamID := range ev.Teams {
			if strings.TrimSpace(teamID) == "" {
				return nil, fmt.Errorf("%w: event %q has a team with an empty id", ErrInvalidCatalog, ev.ID)
			}
		}
		if ev.Active {
			if c.activeID != "" {
				return nil, fmt.Errorf("%w: events %q and %q are both active", ErrInvalidCatalog, c.activeID, ev.ID)
			}
			c.activeID = ev.ID
		}
		c.events[ev.ID] = ev
		c.order = append(c.order, ev.ID)
	}
	return c, nil
}

// ActiveEvent returns the single active event, if one exists. The service
// still starts when none is active; per-request operations then report a
// no-active-event condition.
func (c *Catalog) ActiveEvent() (model.Event, bool) {
	if c.activeID == "" {
		return model.Event{}, false
	}
	return c.events[c.activeID], true
}

// Event returns the event with the given id.
func (c *Catalog) Event(id string) (model.Event, bool) {
	ev, ok := c.events[id]
	return ev, ok
}

// Events returns all events in file order.
func (c *Catalog) Events() []model.Event {
	out := make([]model.Event, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.events[id])
	}
	return out
}
