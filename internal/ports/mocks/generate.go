//go:generate mockgen -source=../order_repository.go     -destination=./mock_order_repository.go     -package=mocks
//go:generate mockgen -source=../status_cache.go         -destination=./mock_status_cache.go         -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks
//go:generate mockgen -source=../fulfillment_service.go  -destination=./mock_fulfillment_service.go  -package=mocks

package mocks
