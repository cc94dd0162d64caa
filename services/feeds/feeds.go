package feeds

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/t288matt/vatsim-interactions/types"
)

const (
	vatsimDataURL        = "https://data.vatsim.net/v3/vatsim-data.json"
	vatsimTransceiverURL = "https://data.vatsim.net/v3/transceivers-data.json"
)

// Client fetches the VATSIM v3 data and transceiver feeds.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchData fetches the network data feed (pilots, controllers, general).
func (c *Client) FetchData() (*types.VatsimData, error) {
	body, err := c.get(vatsimDataURL)
	if err != nil {
		return nil, err
	}

	var data types.VatsimData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("error decoding data feed: %v", err)
	}
	return &data, nil
}

// FetchTransceivers fetches the per-callsign transceiver feed.
func (c *Client) FetchTransceivers() ([]types.TransceiverEntry, error) {
	body, err := c.get(vatsimTransceiverURL)
	if err != nil {
		return nil, err
	}

	var entries []types.TransceiverEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("error decoding transceiver feed: %v", err)
	}
	return entries, nil
}

func (c *Client) get(url string) ([]byte, error) {
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
