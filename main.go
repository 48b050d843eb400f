package main

import (
	"flag"
	"os"
	"strings"

	"go.uber.org/zap"

	"training-store-go/config"
	"training-store-go/db"
	"training-store-go/store"
	"training-store-go/utils"
)

func main() {
	exportKind := flag.String("export", "", "export a collection (courses|students|bookings|sessions|complete) and exit")
	importFile := flag.String("import", "", "import a JSON or XLSX file and exit")
	importKind := flag.String("kind", "complete", "collection kind for -import")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	client, err := db.InitializeRedisClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisDB,
	)
	if err != nil {
		logger.Fatal("could not connect to Redis", zap.Error(err))
	}
	logger.Info("connected to Redis",
		zap.String("addr", config.AppConfig.RedisAddr),
		zap.Int("db", config.AppConfig.RedisDB))

	slot := db.NewRedisSlot(client, config.AppConfig.StorageKey)
	st, err := store.New(slot, logger)
	if err != nil {
		logger.Fatal("could not initialize store", zap.Error(err))
	}

	switch {
	case *exportKind != "":
		runExport(st, *exportKind, logger)
	case *importFile != "":
		runImport(st, *importFile, *importKind, logger)
	}

	stats := st.GetStatistics()
	logger.Info("store ready",
		zap.Int("activeCourses", stats.ActiveCourses),
		zap.Int("campuses", stats.TotalCampuses),
		zap.Int("upcomingSessions", stats.UpcomingSessions),
		zap.Int("students", stats.TotalStudents),
		zap.Int("bookings", stats.TotalBookings))
}

func runExport(st *store.Store, kind string, logger *zap.Logger) {
	filename, data, err := st.ExportData(kind)
	if err != nil {
		logger.Fatal("export failed", zap.String("kind", kind), zap.Error(err))
	}
	path, err := utils.SaveExportFile(config.AppConfig.ExportDir, filename, data)
	if err != nil {
		logger.Fatal("could not write export file", zap.Error(err))
	}
	logger.Info("export written", zap.String("path", path))
}

func runImport(st *store.Store, file, kind string, logger *zap.Logger) {
	if strings.HasSuffix(strings.ToLower(file), ".xlsx") {
		f, err := os.Open(file)
		if err != nil {
			logger.Fatal("could not open import file", zap.String("file", file), zap.Error(err))
		}
		defer f.Close()

		count, err := st.ImportStudentsFromExcel(f)
		if err != nil {
			logger.Fatal("excel import failed", zap.Error(err))
		}
		logger.Info("excel import complete", zap.Int("students", count))
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		logger.Fatal("could not read import file", zap.String("file", file), zap.Error(err))
	}
	if !st.ImportData(data, kind) {
		logger.Fatal("import rejected", zap.String("file", file), zap.String("kind", kind))
	}
	logger.Info("import complete", zap.String("kind", kind))
}
