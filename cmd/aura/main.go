package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	_ "modernc.org/sqlite"

	"github.com/Fawkes0113/Aura-Horizontal/internal/api"
	"github.com/Fawkes0113/Aura-Horizontal/internal/ingest"
	"github.com/Fawkes0113/Aura-Horizontal/internal/models"
	"github.com/Fawkes0113/Aura-Horizontal/internal/store"
)

type cli struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name=env-file,help='Path to an optional .env file.'"`

	DB   string `kong:"default='data/aura.db',env=AURA_DB,help='Path to SQLite database.'"`
	Port string `kong:"default='8080',env=AURA_PORT,help='HTTP server port.'"`

	Name     string        `kong:"default='Wandiligong',env=AURA_LOCATION_NAME,help='Display name for the dashboard location.'"`
	Lat      float64       `kong:"default='-36.794',env=AURA_LAT,help='Location latitude.'"`
	Lon      float64       `kong:"default='146.977',env=AURA_LON,help='Location longitude.'"`
	Timezone string        `kong:"default='auto',env=AURA_TIMEZONE,help='IANA timezone for the forecast, or auto.'"`
	Poll     time.Duration `kong:"default='10m',env=AURA_POLL_INTERVAL,help='Forecast poll interval.'"`

	Once   bool `kong:"help='Ingest once and exit.'"`
	NoPoll bool `kong:"help='Disable polling (server only, for local dev).'"`
}

func main() {
	var flags cli
	kong.Parse(&flags,
		kong.Name("aura"),
		kong.Description("Self-hosted two-panel weather dashboard backed by Open-Meteo."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	db, err := sql.Open("sqlite", flags.DB)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	location := models.Location{
		Name:      flags.Name,
		Latitude:  flags.Lat,
		Longitude: flags.Lon,
		Timezone:  flags.Timezone,
		Active:    true,
	}
	location.ID, err = st.UpsertLocation(location)
	if err != nil {
		log.Fatalf("upsert location: %v", err)
	}

	client := ingest.NewOpenMeteo(flags.Lat, flags.Lon, flags.Timezone)
	scheduler := ingest.NewScheduler(st, client, location)
	scheduler.SetPollInterval(flags.Poll)
	server := api.NewServer(st, flags.Port, location)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if flags.Once {
		log.Println("running single ingestion")
		if err := scheduler.IngestOnce(ctx); err != nil {
			log.Fatalf("ingest: %v", err)
		}
		log.Println("done")
		return
	}

	if !flags.NoPoll {
		go scheduler.Run(ctx)
	} else {
		log.Println("polling disabled (--no-poll)")
	}

	log.Printf("starting server on :%s", flags.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
