package fluentlogger

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config - параметры подключения к Fluent Bit.
type Config struct {
	Host      string // адрес форвардера, в Docker обычно "fluent-bit"
	Port      int    // forward-порт, по умолчанию 24224
	TagPrefix string // префикс тегов сервиса, например "marketplace-service"
}

// NewClient создает клиент Fluent Bit для отправки структурированных логов.
// Отправка асинхронная: разрыв соединения с форвардером не блокирует
// обработку запросов маркетплейса.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Async:      true,
		MaxRetry:   3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	// Успешное создание клиента соединение не гарантирует: ошибки
	// всплывут только при первой отправке лога.
	return client, nil
}
