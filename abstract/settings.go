package abstract

import (
	"encoding/json"
	"fmt"

	"PixelAbstraction/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultThreshold     = 100
	DefaultMinRegionSize = 1
)

type Settings struct {
	logger bslogger.Logger

	// MinRegionSize is the smallest region kept on its own. Smaller regions
	// are merged into a bordering region.
	MinRegionSize int
	// Threshold is the exclusive upper bound on the summed per-channel
	// distance between a pixel and the seed of the region it joins.
	Threshold int
}

// NewSettings reads settings from a json file and fills in defaults.
func NewSettings(settingsFile string) (Settings, error) {
	s := Settings{}
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err = json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
	}
	if err = s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nAbstract settings\n"
	output += fmt.Sprintf("Min Region Size: %d\n", s.MinRegionSize)
	output += fmt.Sprintf("Threshold: %d\n", s.Threshold)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("AbstractSettings", bslogger.Normal, nil)

	if s.MinRegionSize < 1 {
		s.MinRegionSize = DefaultMinRegionSize
	}
	if s.Threshold <= 0 {
		s.Threshold = DefaultThreshold
		s.logger.Info(fmt.Sprintf("Using default threshold of %d", s.Threshold))
	}
	return nil
}
