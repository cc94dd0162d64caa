package collector

import (
	"fmt"
	"log"
	"time"

	"github.com/t288matt/vatsim-interactions/db"
	"github.com/t288matt/vatsim-interactions/services/feeds"
	"github.com/t288matt/vatsim-interactions/types"
)

// Collector periodically snapshots the VATSIM transceiver feed into the
// transceiver_samples table, classifying each radio as controller-origin
// or flight-origin via the network data feed.
type Collector struct {
	feeds      *feeds.Client
	lastUpdate string
	stats      types.CollectionStats
}

func NewCollector() *Collector {
	return &Collector{
		feeds: feeds.NewClient(),
		stats: types.CollectionStats{
			StartTime: time.Now(),
		},
	}
}

func (c *Collector) GetStats() types.CollectionStats {
	return c.stats
}

func (c *Collector) FetchAndStore() error {
	data, err := c.feeds.FetchData()
	if err != nil {
		return fmt.Errorf("error fetching data feed: %v", err)
	}

	// Feed unchanged since the last snapshot.
	if data.General.Update == c.lastUpdate {
		return nil
	}

	entries, err := c.feeds.FetchTransceivers()
	if err != nil {
		return fmt.Errorf("error fetching transceiver feed: %v", err)
	}

	samples := c.classify(data, entries)
	if err := db.StoreSamples(samples); err != nil {
		return fmt.Errorf("error storing samples: %v", err)
	}

	c.lastUpdate = data.General.Update
	c.stats.LastUpdate = time.Now()
	c.stats.TotalSnapshots++
	c.stats.SamplesStored += int64(len(samples))

	log.Printf("Collection update: %d samples stored (%d controller, %d flight), total snapshots: %d, running for: %v",
		len(samples),
		c.stats.ControllerSamples,
		c.stats.FlightSamples,
		c.stats.TotalSnapshots,
		time.Since(c.stats.StartTime).Round(time.Second))

	return nil
}

// classify turns transceiver entries into typed samples. The transceiver
// feed does not carry entity type, so callsigns are matched against the
// data feed's controller and pilot lists; radios belonging to neither
// (observers, ATIS-only ghosts) are counted and skipped.
func (c *Collector) classify(data *types.VatsimData, entries []types.TransceiverEntry) []types.TransceiverSample {
	controllers := make(map[string]bool, len(data.Controllers))
	for _, ctrl := range data.Controllers {
		controllers[ctrl.Callsign] = true
	}
	pilots := make(map[string]bool, len(data.Pilots))
	for _, p := range data.Pilots {
		pilots[p.Callsign] = true
	}

	observedAt := data.General.UpdateTimestamp

	var samples []types.TransceiverSample
	for _, entry := range entries {
		var entityType types.EntityType
		switch {
		case controllers[entry.Callsign]:
			entityType = types.EntityController
		case pilots[entry.Callsign]:
			entityType = types.EntityFlight
		default:
			c.stats.UnclassifiedRadios++
			continue
		}

		for _, radio := range entry.Transceivers {
			if radio.FrequencyHz <= 0 {
				continue
			}
			samples = append(samples, types.TransceiverSample{
				EntityType:  entityType,
				Callsign:    entry.Callsign,
				FrequencyHz: radio.FrequencyHz,
				Timestamp:   observedAt,
				Latitude:    radio.LatDeg,
				Longitude:   radio.LonDeg,
			})
			if entityType == types.EntityController {
				c.stats.ControllerSamples++
			} else {
				c.stats.FlightSamples++
			}
		}
	}

	return samples
}
