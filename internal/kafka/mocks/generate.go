//go:generate mockgen -source=../status_consumer.go -destination=./mock_status_consumer.go -package=mocks

package mocks
