package app

import (
	"database/sql"

	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/platform/db"
	"github.com/TkachenkoRP/spring-booking/internal/platform/hash"
	"github.com/TkachenkoRP/spring-booking/internal/platform/jwt"
	"github.com/TkachenkoRP/spring-booking/internal/platform/kafka"
	"github.com/TkachenkoRP/spring-booking/internal/platform/metrics"
	"github.com/TkachenkoRP/spring-booking/internal/platform/router"
	"github.com/TkachenkoRP/spring-booking/internal/platform/validation"
	"go.mongodb.org/mongo-driver/mongo"
)

type Provider struct {
	DB        *sql.DB
	Mongo     *mongo.Database
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
	Metrics   *metrics.Metrics
	Producer  kafka.Publisher
	Consumer  kafka.Consumer
}

func newProvider(cfg *config.Config, securityKey string, dbConn *sql.DB, mongoDB *mongo.Database) *Provider {
	return &Provider{
		DB:        dbConn,
		Mongo:     mongoDB,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
		TxMgr:     db.NewSQLTxManager(dbConn),
		Metrics:   metrics.New(),
		Producer:  kafka.NewPublisher(cfg.Kafka),
		Consumer:  kafka.NewConsumer(cfg.Kafka, cfg.Kafka.RoomBookedTopic, cfg.Kafka.UserRegisteredTopic),
	}
}
