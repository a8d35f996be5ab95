package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/mealdb/internal/store/jsonstore"
)

// Settings is the typed view the rest of the program consumes.
type Settings struct {
	BaseURL          string
	Timeout          time.Duration
	Debounce         time.Duration
	CloseDelay       time.Duration
	PreviewLength    int
	UTCOffset        time.Duration
	Location         string
	StorePath        string
	StoreLockTimeout time.Duration
	DebugLogFile     string
	Theme            string
}

// Load reads the current settings and validates them.
// An empty store path resolves to ~/.mealdb/store.json.
func Load() (Settings, error) {
	if v == nil {
		if err := Initialize(""); err != nil {
			return Settings{}, err
		}
	}
	s := Settings{
		BaseURL:          strings.TrimSpace(GetString(KeyBaseURL)),
		Timeout:          GetDuration(KeyTimeout),
		Debounce:         GetDuration(KeyDebounce),
		CloseDelay:       GetDuration(KeyCloseDelay),
		PreviewLength:    GetInt(KeyPreviewLength),
		UTCOffset:        GetDuration(KeyUTCOffset),
		Location:         GetString(KeyLocation),
		StorePath:        strings.TrimSpace(GetString(KeyStorePath)),
		StoreLockTimeout: GetDuration(KeyStoreLockTimeout),
		DebugLogFile:     GetString(KeyDebugLogFile),
		Theme:            GetString(KeyTheme),
	}
	if s.StorePath == "" {
		p, err := jsonstore.DefaultPath()
		if err != nil {
			return Settings{}, err
		}
		s.StorePath = p
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects values the program cannot work with.
func (s Settings) Validate() error {
	var issues []string
	if s.BaseURL == "" {
		issues = append(issues, KeyBaseURL+": must not be empty")
	} else if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		issues = append(issues, fmt.Sprintf("%s: %q is not an http(s) URL", KeyBaseURL, s.BaseURL))
	}
	if s.Timeout < 0 {
		issues = append(issues, KeyTimeout+": must not be negative")
	}
	if s.Debounce < 0 {
		issues = append(issues, KeyDebounce+": must not be negative")
	}
	if s.CloseDelay < 0 {
		issues = append(issues, KeyCloseDelay+": must not be negative")
	}
	if s.PreviewLength < 0 {
		issues = append(issues, KeyPreviewLength+": must not be negative")
	}
	if s.UTCOffset <= -24*time.Hour || s.UTCOffset >= 24*time.Hour {
		issues = append(issues, KeyUTCOffset+": must be within ±24h")
	}
	if len(issues) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(issues, "; "))
	}
	return nil
}
