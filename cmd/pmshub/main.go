package main

import (
	connhandler "pmshub/internal/connections/handler"
	connrepo "pmshub/internal/connections/repository"
	connservice "pmshub/internal/connections/service"
	connvalidator "pmshub/internal/connections/validator"
	recordshandler "pmshub/internal/records/handler"
	recordsrepo "pmshub/internal/records/repository"
	recordsservice "pmshub/internal/records/service"
	"pmshub/internal/sync"
	"pmshub/pkg/app"
	"pmshub/pkg/config"
	"pmshub/pkg/kafka"
	kafkaconfig "pmshub/pkg/kafka/config"
	"pmshub/pkg/secrets"
)

const ServiceName = "pmshub"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting PMS hub service")

	connectionRepo := connrepo.NewMongoConnectionRepository(cfg)
	recordsRepo := recordsrepo.NewMongoRecordsRepository(cfg)

	connectionService := connservice.NewConnectionService(
		connectionRepo,
		connvalidator.NewConnectionValidator(cfg.Log),
		cfg.Log,
	)
	recordsService := recordsservice.NewRecordsService(recordsRepo, connectionRepo, cfg.Log)

	events, producer := initEvents(cfg)
	if producer != nil {
		defer producer.Close()
	}

	syncService := sync.NewSyncService(
		connectionRepo,
		recordsRepo,
		sync.NewFetcher(cfg, secrets.Passthrough{}),
		events,
		cfg.Log,
	)

	cfg.Log.Info("PMS hub services initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		connhandler.NewConnectionHandler(connectionService, cfg.Log),
		sync.NewSyncHandler(syncService, cfg.Log),
		recordshandler.NewRecordsHandler(recordsService, cfg.Log),
	)
	serverApp.Run()
}

func initEvents(cfg *config.Config) (sync.EventPublisher, *kafka.Producer) {
	kafkaCfg := kafkaconfig.Load()
	if !kafkaCfg.Enabled {
		cfg.Log.Info("Kafka disabled, sync events will not be published")
		return sync.NewNoopEventPublisher(), nil
	}

	producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.SyncTopic, kafkaCfg.SyncDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka sync event publisher initialized",
		"topic", kafkaCfg.SyncTopic,
		"dlq_topic", kafkaCfg.SyncDLQTopic,
	)
	return sync.NewKafkaEventPublisher(producer, cfg.Log), producer
}
