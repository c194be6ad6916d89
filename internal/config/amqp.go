package config

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

func NewAMQPConnection(cfg *Config) (*amqp.Connection, error) {
	return amqp.Dial(cfg.AMQPURL)
}
