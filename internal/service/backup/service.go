package backup_service

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/models/config"
	"student-control/internal/service"
	"student-control/internal/validation"
)

const (
	filePrefix     = "students_backup_"
	fileSuffix     = ".db"
	fileTimeLayout = "2006-01-02_15-04-05"
)

var ErrBackupUnsupported = errors.New("backups are only available for the sqlite driver")

type backupService struct {
	dbPath string
	driver string
	dir    string
	keep   int
	log    *zap.Logger
	now    func() time.Time
}

func NewBackupService(db config.DatabaseConfig, cfg config.BackupConfig, log *zap.Logger) service.BackupService {
	return &backupService{
		dbPath: db.Path,
		driver: db.Driver,
		dir:    cfg.Dir,
		keep:   cfg.Keep,
		log:    log,
		now:    time.Now,
	}
}

// Create snapshots the live database file and prunes old snapshots.
func (s *backupService) Create() (*models.Backup, error) {
	if s.driver != config.DriverSQLite {
		return nil, ErrBackupUnsupported
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create backup dir")
	}

	name := filePrefix + s.now().Format(fileTimeLayout) + fileSuffix
	path := filepath.Join(s.dir, name)
	if err := copyFile(s.dbPath, path); err != nil {
		return nil, errors.Wrap(err, "copy database")
	}

	backup, err := describe(path)
	if err != nil {
		return nil, err
	}
	s.log.Info("💾 backup created", zap.String("path", path), zap.Int64("size", backup.Size))

	if err := s.prune(); err != nil {
		s.log.Warn("backup prune failed", zap.Error(err))
	}
	return backup, nil
}

// List returns the snapshots newest first; the name embeds the timestamp.
func (s *backupService) List() ([]models.Backup, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return []models.Backup{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read backup dir")
	}

	backups := []models.Backup{}
	for _, e := range entries {
		if e.IsDir() || !validName(e.Name()) {
			continue
		}
		b, err := describe(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		backups = append(backups, *b)
	}
	sort.Slice(backups, func(i, j int) bool { return backups[i].Name > backups[j].Name })
	return backups, nil
}

// Restore overwrites the live database file with the named snapshot.
func (s *backupService) Restore(name string) error {
	if s.driver != config.DriverSQLite {
		return ErrBackupUnsupported
	}
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := copyFile(path, s.dbPath); err != nil {
		return errors.Wrap(err, "restore database")
	}
	s.log.Warn("♻️ database restored from backup", zap.String("backup", name))
	return nil
}

func (s *backupService) Delete(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, "delete backup")
	}
	s.log.Info("🗑️ backup deleted", zap.String("backup", name))
	return nil
}

func (s *backupService) prune() error {
	if s.keep <= 0 {
		return nil
	}
	backups, err := s.List()
	if err != nil {
		return err
	}
	if len(backups) <= s.keep {
		return nil
	}
	for _, b := range backups[s.keep:] {
		if err := os.Remove(b.Path); err != nil {
			return errors.Wrapf(err, "remove %s", b.Name)
		}
		s.log.Debug("old backup removed", zap.String("backup", b.Name))
	}
	return nil
}

func (s *backupService) resolve(name string) (string, error) {
	if !validName(name) {
		return "", validation.Field("name", "nome de backup inválido")
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(models.ErrNotFound, "backup %s", name)
		}
		return "", errors.Wrap(err, "stat backup")
	}
	return path, nil
}

func validName(name string) bool {
	return filepath.Base(name) == name &&
		!strings.ContainsAny(name, `/\`) &&
		strings.HasPrefix(name, filePrefix) &&
		strings.HasSuffix(name, fileSuffix)
}

func describe(path string) (*models.Backup, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "stat backup")
	}
	return &models.Backup{
		Name:      info.Name(),
		Path:      path,
		CreatedAt: info.ModTime(),
		Size:      info.Size(),
	}, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
