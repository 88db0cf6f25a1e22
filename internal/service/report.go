package service

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/anassar/mudeer/core/logger"
	"github.com/anassar/mudeer/internal/storage"
)

// Report builds the per-owner data summary.
type Report struct {
	contacts storage.ContactStore
	files    storage.MediaStore
	images   storage.MediaStore
	now      func() time.Time
}

// NewReport builds the report service.
func NewReport(contacts storage.ContactStore, files, images storage.MediaStore) *Report {
	return &Report{
		contacts: contacts,
		files:    files,
		images:   images,
		now:      time.Now,
	}
}

// Generate renders the owner's record counts as the Arabic summary text.
func (s *Report) Generate(ctx context.Context, ownerID int64) (string, error) {
	contacts, err := s.contacts.Count(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("count contacts: %w", err)
	}
	files, err := s.files.Count(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("count files: %w", err)
	}
	images, err := s.images.Count(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("count images: %w", err)
	}

	report := fmt.Sprintf(
		"📊 تقرير إدارة قاعدة البيانات\n"+
			"━━━━━━━━━━━━━━━━━━\n"+
			"📞 عدد الأرقام : %d\n"+
			"📁 عدد الملفات : %d\n"+
			"🖼️ عدد الصور   : %d\n\n"+
			"🕒 %s",
		contacts, files, images,
		s.now().Format("2006-01-02 15:04"),
	)

	logger.SVCReport.Debug("report generated",
		slog.String("event", "report.generate"),
		slog.Int64("user_id", ownerID),
	)
	return report, nil
}
