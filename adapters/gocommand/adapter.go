package gocommand

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-command"
	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	jobqueuecommand "github.com/goliatone/go-job/queue/command"

	storefrontcommand "github.com/dev-saiful/go-storefront/command"
	storefrontquery "github.com/dev-saiful/go-storefront/query"
)

// ValidateMessageContract enforces Type() plus optional Validate() contract.
func ValidateMessageContract(msg any) error {
	if err := command.ValidateMessage(msg); err != nil {
		return err
	}
	m, ok := msg.(command.Message)
	if !ok {
		return fmt.Errorf("gocommand: message must implement Type() string")
	}
	if strings.TrimSpace(m.Type()) == "" {
		return fmt.Errorf("gocommand: message type is required")
	}
	return nil
}

type RegistryAdapter struct {
	registry *command.Registry
}

func NewRegistryAdapter(registry *command.Registry) *RegistryAdapter {
	if registry == nil {
		registry = command.NewRegistry()
	}
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) Registry() *command.Registry {
	if a == nil {
		return nil
	}
	return a.registry
}

func (a *RegistryAdapter) RegisterCommand(cmd any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(cmd)
}

func (a *RegistryAdapter) RegisterQuery(qry any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(qry)
}

func (a *RegistryAdapter) AddResolver(key string, resolver command.Resolver) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.AddResolver(strings.TrimSpace(key), resolver)
}

func (a *RegistryAdapter) AddQueueResolver(key string, queueRegistry *jobqueuecommand.Registry) error {
	if queueRegistry == nil {
		return fmt.Errorf("gocommand: queue registry is required")
	}
	return a.AddResolver(key, jobqueuecommand.QueueResolver(queueRegistry))
}

func (a *RegistryAdapter) HasResolver(key string) bool {
	if a == nil || a.registry == nil {
		return false
	}
	return a.registry.HasResolver(strings.TrimSpace(key))
}

func (a *RegistryAdapter) Initialize() error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.Initialize()
}

func SubscribeCommand[T any](cmd command.Commander[T], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeCommand(cmd, runnerOpts...)
}

func SubscribeQuery[T any, R any](qry command.Querier[T, R], runnerOpts ...runner.Option) commanddispatcher.Subscription {
	return commanddispatcher.SubscribeQuery(qry, runnerOpts...)
}

func Dispatch[T any](ctx context.Context, msg T) error {
	return commanddispatcher.Dispatch(ctx, msg)
}

func Query[T any, R any](ctx context.Context, msg T) (R, error) {
	return commanddispatcher.Query[T, R](ctx, msg)
}

func RegisterAndSubscribe[T any](
	adapter *RegistryAdapter,
	cmd command.Commander[T],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}
	if cmd == nil {
		return nil, fmt.Errorf("gocommand: command is required")
	}
	subscription := SubscribeCommand(cmd, runnerOpts...)
	if err := adapter.RegisterCommand(cmd); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

func RegisterAndSubscribeQuery[T any, R any](
	adapter *RegistryAdapter,
	qry command.Querier[T, R],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}
	if qry == nil {
		return nil, fmt.Errorf("gocommand: query is required")
	}
	subscription := SubscribeQuery(qry, runnerOpts...)
	if err := adapter.RegisterQuery(qry); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

// Handlers groups the services the storefront command and query handlers
// delegate to. Nil entries are skipped so callers can wire a subset.
type Handlers struct {
	Auth     storefrontcommand.AuthService
	Cart     storefrontcommand.CartService
	Checkout storefrontcommand.CheckoutService
	Reviews  storefrontcommand.ReviewService
	Wishlist storefrontcommand.WishlistService

	Catalog      storefrontquery.CatalogReader
	CartRead     storefrontquery.CartReader
	Orders       storefrontquery.OrdersReader
	ReviewsRead  storefrontquery.ReviewsReader
	WishlistRead storefrontquery.WishlistReader
	Profile      storefrontquery.ProfileReader
}

// RegisterHandlers wires every storefront command and query handler for the
// configured services into the registry and dispatcher in one shot.
func RegisterHandlers(adapter *RegistryAdapter, handlers Handlers, runnerOpts ...runner.Option) ([]commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}

	var subscriptions []commanddispatcher.Subscription
	keep := func(subscription commanddispatcher.Subscription, err error) error {
		if err != nil {
			for _, active := range subscriptions {
				active.Unsubscribe()
			}
			return err
		}
		subscriptions = append(subscriptions, subscription)
		return nil
	}

	if handlers.Auth != nil {
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewLoginCommand(handlers.Auth), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewRegisterCommand(handlers.Auth), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewVerifyEmailCommand(handlers.Auth), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewLogoutCommand(handlers.Auth), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewRefreshSessionCommand(handlers.Auth), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.Cart != nil {
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewAddCartItemCommand(handlers.Cart), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewUpdateCartItemCommand(handlers.Cart), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewRemoveCartItemCommand(handlers.Cart), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewClearCartCommand(handlers.Cart), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.Checkout != nil {
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewCheckoutCommand(handlers.Checkout), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewCancelOrderCommand(handlers.Checkout), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.Reviews != nil {
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewSubmitReviewCommand(handlers.Reviews), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewDeleteReviewCommand(handlers.Reviews), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.Wishlist != nil {
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewAddWishlistItemCommand(handlers.Wishlist), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribe(adapter, storefrontcommand.NewRemoveWishlistItemCommand(handlers.Wishlist), runnerOpts...)); err != nil {
			return nil, err
		}
	}

	if handlers.Catalog != nil {
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewListProductsQuery(handlers.Catalog), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewGetProductQuery(handlers.Catalog), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewListCategoriesQuery(handlers.Catalog), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.CartRead != nil {
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewGetCartQuery(handlers.CartRead), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.Orders != nil {
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewListOrdersQuery(handlers.Orders), runnerOpts...)); err != nil {
			return nil, err
		}
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewGetOrderQuery(handlers.Orders), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.ReviewsRead != nil {
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewListReviewsQuery(handlers.ReviewsRead), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.WishlistRead != nil {
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewListWishlistQuery(handlers.WishlistRead), runnerOpts...)); err != nil {
			return nil, err
		}
	}
	if handlers.Profile != nil {
		if err := keep(RegisterAndSubscribeQuery(adapter, storefrontquery.NewGetCurrentUserQuery(handlers.Profile), runnerOpts...)); err != nil {
			return nil, err
		}
	}

	return subscriptions, nil
}
