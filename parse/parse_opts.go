package parse

import (
	"time"

	"github.com/flying-sheep/plist/iso8601"
)

type parseOpts struct {
	defaultZone *time.Location
}

type ParseOption func(*parseOpts)

// DefaultZone sets the zone applied to <date> values that carry no zone
// designator. The default is UTC.
func DefaultZone(loc *time.Location) ParseOption {
	return func(po *parseOpts) { po.defaultZone = loc }
}

func (po *parseOpts) dateOpts() []iso8601.ParseOption {
	if po.defaultZone == nil {
		return nil
	}
	return []iso8601.ParseOption{iso8601.DefaultZone(po.defaultZone)}
}
