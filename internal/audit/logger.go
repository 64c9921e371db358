package audit

import (
	"go.uber.org/zap"
)

// Logger grava eventos de auditoria como entradas estruturadas
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) error {
	fields := []zap.Field{
		zap.String("profile_id", ev.ProfileID),
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
	}
	if ev.EntityID != "" {
		fields = append(fields, zap.String("entity_id", ev.EntityID))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	l.log.Info("audit", fields...)
	return nil
}
