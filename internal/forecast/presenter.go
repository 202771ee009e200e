package forecast

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Harsh-GitHup/go-weather-app/pkg/log"
)

// fetchTimeout bounds a single upstream fetch. A search that outlives it is
// abandoned and reported as a failure.
const fetchTimeout = 10 * time.Second

// NoDataMessage is the user-facing line shown when the upstream answered but
// carried no usable current conditions.
const NoDataMessage = "No weather data found."

const genericFailureMessage = "Weather request failed."

// FetchResult is what the fetch collaborator returns for one search. A nil
// Current signals "not found" and is presented as an empty grid, not an
// error.
type FetchResult struct {
	Current *CurrentConditions
	Samples []Sample
	Place   *Place
	Cached  bool
}

// Fetcher is the upstream forecast-fetch capability the presenter consumes.
type Fetcher interface {
	Fetch(ctx context.Context, query string, units Units) (FetchResult, error)
}

// Cell pairs a slot with its best-matched sample for one day. Sample is nil
// when the slot went unmatched; the style is empty in that case.
type Cell struct {
	Slot    string    `json:"slot"`
	Sample  *Sample   `json:"sample,omitempty"`
	IconURL string    `json:"iconUrl,omitempty"`
	Style   TempStyle `json:"style,omitempty"`
}

// DayView is one row of the presented grid.
type DayView struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// State is the full presentation state of the most recent search. It is
// rebuilt from scratch on every search; a failed search leaves an empty grid
// and a single-line Message.
type State struct {
	Query     string             `json:"query"`
	Units     Units              `json:"units"`
	TempUnit  string             `json:"tempUnit"`
	WindUnit  string             `json:"windUnit"`
	Loading   bool               `json:"loading"`
	Message   string             `json:"message,omitempty"`
	Place     *Place             `json:"place,omitempty"`
	PlaceName string             `json:"placeName"`
	Current   *CurrentConditions `json:"current,omitempty"`
	Days      []DayView          `json:"days"`
	FetchedAt int64              `json:"fetchedAt,omitempty"`
	Cached    bool               `json:"cached,omitempty"`
}

// Presenter orchestrates the fetch → group → match pipeline and owns the
// single shared result state. Concurrent searches race last-writer-wins: a
// newer search supersedes the visible result of an older one, but the older
// network fetch is not actively canceled.
type Presenter struct {
	fetcher Fetcher
	loc     *time.Location

	mu    sync.Mutex
	seq   uint64
	state State
}

// NewPresenter builds a presenter that buckets samples in loc. A nil loc
// means the process-local zone, standing in for the viewer's clock.
func NewPresenter(fetcher Fetcher, loc *time.Location) *Presenter {
	if loc == nil {
		loc = time.Local
	}
	return &Presenter{fetcher: fetcher, loc: loc}
}

// Current returns a copy of the latest presentation state.
func (p *Presenter) Current() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Search runs one fetch-and-reshape cycle and returns the resulting state.
// The shared state is only replaced when no newer search has started in the
// meantime.
func (p *Presenter) Search(ctx context.Context, query string, units Units) State {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.state.Loading = true
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	res, err := p.fetcher.Fetch(ctx, query, units)

	next := State{
		Query:    query,
		Units:    units,
		TempUnit: units.TempLabel(),
		WindUnit: units.WindLabel(),
		Days:     []DayView{},
	}

	switch {
	case err != nil:
		log.Warnf("search failed for %q: %v", query, err)
		next.Message = failureMessage(err)
		next.PlaceName = UnknownPlaceName
	case res.Current == nil:
		next.Message = NoDataMessage
		next.PlaceName = UnknownPlaceName
	default:
		next.Place = res.Place
		next.PlaceName = res.Place.DisplayName()
		next.Current = res.Current
		next.Days = p.buildDays(res.Samples, units)
		next.FetchedAt = time.Now().Unix()
		next.Cached = res.Cached
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq == p.seq {
		p.state = next
	}
	return next
}

// buildDays turns the flat sample sequence into the day × slot grid.
func (p *Presenter) buildDays(samples []Sample, units Units) []DayView {
	buckets := GroupDays(samples, p.loc)

	days := make([]DayView, 0, len(buckets))
	for _, b := range buckets {
		cells := make([]Cell, 0, len(Slots))
		for _, slot := range Slots {
			cell := Cell{Slot: slot.Name}
			if s := MatchSlot(b.Items, slot, p.loc); s != nil {
				cell.Sample = s
				cell.IconURL = IconURL(s.Icon)
				cell.Style = ColorizeTemperature(s.Temperature, units)
			}
			cells = append(cells, cell)
		}
		days = append(days, DayView{Label: b.Label, Cells: cells})
	}
	return days
}

func failureMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Weather request timed out."
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericFailureMessage
}
