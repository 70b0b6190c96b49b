package app

import (
	"time"

	builties_carrier_get "builty-service/internal/handlers/rest/builties_carrier_get"
	builties_my_get "builty-service/internal/handlers/rest/builties_my_get"
	builty_cancel_post "builty-service/internal/handlers/rest/builty_cancel_post"
	builty_deliver_post "builty-service/internal/handlers/rest/builty_deliver_post"
	builty_dispatch_post "builty-service/internal/handlers/rest/builty_dispatch_post"
	builty_get "builty-service/internal/handlers/rest/builty_get"
	builty_photo_post "builty-service/internal/handlers/rest/builty_photo_post"
	builty_post "builty-service/internal/handlers/rest/builty_post"
	builty_print_get "builty-service/internal/handlers/rest/builty_print_get"
	builty_print_pdf_get "builty-service/internal/handlers/rest/builty_print_pdf_get"
	builty_sign_consignor_post "builty-service/internal/handlers/rest/builty_sign_consignor_post"
	builty_stats_get "builty-service/internal/handlers/rest/builty_stats_get"
	builty_verify_get "builty-service/internal/handlers/rest/builty_verify_get"
	config_list_get "builty-service/internal/handlers/rest/config_list_get"
	config_public_get "builty-service/internal/handlers/rest/config_public_get"
	config_put "builty-service/internal/handlers/rest/config_put"
	config_status_post "builty-service/internal/handlers/rest/config_status_post"
	pricing_rule_post "builty-service/internal/handlers/rest/pricing_rule_post"
	pricing_rule_put "builty-service/internal/handlers/rest/pricing_rule_put"
	pricing_rule_status_post "builty-service/internal/handlers/rest/pricing_rule_status_post"
	pricing_rules_applicable_get "builty-service/internal/handlers/rest/pricing_rules_applicable_get"
	pricing_rules_get "builty-service/internal/handlers/rest/pricing_rules_get"
	route_pricing_get "builty-service/internal/handlers/rest/route_pricing_get"
	route_pricing_post "builty-service/internal/handlers/rest/route_pricing_post"
	route_pricing_status_post "builty-service/internal/handlers/rest/route_pricing_status_post"
	route_quote_get "builty-service/internal/handlers/rest/route_quote_get"
	builtyService "builty-service/internal/service/builty"
	"builty-service/pkg/background"
)

type (
	StatsRefreshInterval time.Duration
	EventsTopic          string
	VerificationSecret   string
)

const systemMetricsInterval = 5 * time.Second

type Application struct {
	ServiceBuilty        ServiceBuilty
	ServiceConfiguration ServiceConfiguration
	ServicePricing       ServicePricing
	BackgroundWorkers    *background.Worker
}

type ServiceBuilty interface {
	builty_post.Service
	builties_my_get.Service
	builties_carrier_get.Service
	builty_get.Service
	builty_print_get.Service
	builty_print_pdf_get.Service
	builty_verify_get.Service
	builty_dispatch_post.Service
	builty_deliver_post.Service
	builty_sign_consignor_post.Service
	builty_cancel_post.Service
	builty_photo_post.Service
	builty_stats_get.Service
}

type ServiceConfiguration interface {
	config_list_get.Service
	config_public_get.Service
	config_put.Service
	config_status_post.Service
}

type ServicePricing interface {
	pricing_rules_get.Service
	pricing_rule_post.Service
	pricing_rule_put.Service
	pricing_rule_status_post.Service
	pricing_rules_applicable_get.Service
	route_pricing_get.Service
	route_pricing_post.Service
	route_pricing_status_post.Service
	route_quote_get.Service
}

type KafkaWorkerApp struct {
	BuiltyService *builtyService.Service
}
