package services

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	promptLogFile  = "prompt_logs.csv"
	contactLogFile = "contact_logs.csv"
)

// Column headers are load-bearing: external analytics tooling reads these
// files, so the order and names must not change.
var promptLogHeader = []string{"Timestamp", "RoomType", "FurnitureStyle", "AdditionalPrompt", "RemoveFurniture", "UserRole", "ReferralSource", "Email", "ClientIP"}
var contactLogHeader = []string{"Timestamp", "UserRole", "ReferralSource", "Email", "UserAgent", "ClientIP"}

type PromptLogRecord struct {
	RoomType         string
	FurnitureStyle   string
	AdditionalPrompt string
	RemoveFurniture  bool
	UserRole         string
	ReferralSource   string
	Email            string
	ClientIP         string
}

type ContactLogRecord struct {
	UserRole       string
	ReferralSource string
	Email          string
	UserAgent      string
	ClientIP       string
}

// UsageLogService appends one CSV row per processed request for analytics.
// It is side-effect only: failures are captured for operators and never
// reach the HTTP caller.
type UsageLogService struct {
	dir string
	mu  sync.Mutex
}

func NewUsageLogService() *UsageLogService {
	return &UsageLogService{dir: resolveLogDir()}
}

// NewUsageLogServiceAt pins the log directory, mainly for tests.
func NewUsageLogServiceAt(dir string) *UsageLogService {
	return &UsageLogService{dir: dir}
}

func resolveLogDir() string {
	if os.Getenv(hostingMarkerEnv) != "" {
		if info, err := os.Stat(hostingVolumePath); err == nil && info.IsDir() {
			return hostingVolumePath
		}
	}
	localDir := "data"
	if err := os.MkdirAll(localDir, 0o755); err == nil {
		return localDir
	}
	log.Printf("[UsageLog] Could not create local data dir, logging to working directory")
	return "."
}

// Dir returns the resolved log directory.
func (s *UsageLogService) Dir() string {
	return s.dir
}

// LogPrompt records one staging request. Never returns an error.
func (s *UsageLogService) LogPrompt(record PromptLogRecord) {
	s.appendRow(promptLogFile, promptLogHeader, []string{
		time.Now().UTC().Format(time.RFC3339),
		record.RoomType,
		record.FurnitureStyle,
		record.AdditionalPrompt,
		strconv.FormatBool(record.RemoveFurniture),
		record.UserRole,
		record.ReferralSource,
		record.Email,
		record.ClientIP,
	})
}

// LogContact records one contact-form submission. Never returns an error.
func (s *UsageLogService) LogContact(record ContactLogRecord) {
	s.appendRow(contactLogFile, contactLogHeader, []string{
		time.Now().UTC().Format(time.RFC3339),
		record.UserRole,
		record.ReferralSource,
		record.Email,
		record.UserAgent,
		record.ClientIP,
	})
}

func (s *UsageLogService) appendRow(fileName string, header, row []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, fileName)
	_, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[UsageLog] Failed to open %s: %v", path, err)
		sentry.CaptureException(fmt.Errorf("usage log open %s: %w", path, err))
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if os.IsNotExist(statErr) {
		if err := w.Write(header); err != nil {
			log.Printf("[UsageLog] Failed to write header to %s: %v", path, err)
			sentry.CaptureException(fmt.Errorf("usage log header %s: %w", path, err))
			return
		}
	}
	if err := w.Write(row); err != nil {
		log.Printf("[UsageLog] Failed to write row to %s: %v", path, err)
		sentry.CaptureException(fmt.Errorf("usage log row %s: %w", path, err))
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("[UsageLog] Failed to flush %s: %v", path, err)
		sentry.CaptureException(fmt.Errorf("usage log flush %s: %w", path, err))
	}
}
