package client

import (
	"context"
	"log"

	"github.com/Likhithagandham/Digital-Cafe/auth"
	"github.com/Likhithagandham/Digital-Cafe/models"

	"github.com/google/uuid"
)

// View is the active screen.
type View string

const (
	ViewMenu    View = "menu"
	ViewKitchen View = "kitchen"
)

// Notifier receives user-facing feedback. Notify is a transient toast,
// Alert is a blocking error.
type Notifier interface {
	Notify(message string)
	Alert(message string)
}

type logNotifier struct{}

func (logNotifier) Notify(message string) { log.Println(message) }
func (logNotifier) Alert(message string)  { log.Println("ALERT:", message) }

// App is the session-scoped application state: everything the single page
// holds between user actions. All mutation goes through its methods; it is
// driven from one goroutine, as a UI event loop would.
type App struct {
	SessionID string

	api      *Client
	verifier auth.CredentialVerifier
	notifier Notifier

	isAdmin  bool
	view     View
	cartOpen bool

	menu   []models.MenuItem
	orders []models.Order
	cart   Cart

	searchTerm       string
	selectedCategory string
}

// NewApp builds a session against the given API client, starting as an
// unauthenticated customer on the menu view.
func NewApp(api *Client) *App {
	return &App{
		SessionID:        uuid.New().String(),
		api:              api,
		verifier:         auth.StaticKey(auth.DefaultAdminKey),
		notifier:         logNotifier{},
		view:             ViewMenu,
		selectedCategory: CategoryAll,
	}
}

// SetVerifier swaps the admin credential check.
func (a *App) SetVerifier(v auth.CredentialVerifier) { a.verifier = v }

// SetNotifier swaps the feedback sink.
func (a *App) SetNotifier(n Notifier) { a.notifier = n }

// Init fetches the menu once at startup. A failure only logs; the page
// renders empty and the user can act again.
func (a *App) Init(ctx context.Context) {
	a.RefreshMenu(ctx)
}

// RefreshMenu refetches the full menu, leaving state untouched on failure.
func (a *App) RefreshMenu(ctx context.Context) {
	menu, err := a.api.FetchMenu(ctx)
	if err != nil {
		log.Println("Fetch Menu Error:", err)
		return
	}
	a.menu = menu
}

// RefreshOrders refetches pending orders, leaving state untouched on failure.
func (a *App) RefreshOrders(ctx context.Context) {
	orders, err := a.api.FetchOrders(ctx)
	if err != nil {
		log.Println("Fetch Orders Error:", err)
		return
	}
	a.orders = orders
}

// Login checks the entered key. Success grants admin on the menu view;
// failure raises a blocking alert and changes nothing.
func (a *App) Login(key string) bool {
	if !a.verifier.Verify(key) {
		a.notifier.Alert("Wrong Key")
		return false
	}
	a.isAdmin = true
	a.view = ViewMenu
	return true
}

// Logout unconditionally returns to the customer menu view. The cart is
// deliberately kept.
func (a *App) Logout() {
	a.isAdmin = false
	a.view = ViewMenu
}

// SwitchView changes screens. The kitchen view is admin only, and entering
// it fetches pending orders.
func (a *App) SwitchView(ctx context.Context, view View) {
	if view == ViewKitchen {
		if !a.isAdmin {
			return
		}
		a.view = ViewKitchen
		a.RefreshOrders(ctx)
		return
	}
	a.view = view
}

func (a *App) IsAdmin() bool { return a.isAdmin }

func (a *App) View() View { return a.view }

// OpenCart and CloseCart gate only the drawer's visibility.
func (a *App) OpenCart() { a.cartOpen = true }

func (a *App) CloseCart() { a.cartOpen = false }

func (a *App) CartOpen() bool { return a.cartOpen }

func (a *App) Cart() *Cart { return &a.cart }

func (a *App) Menu() []models.MenuItem { return a.menu }

func (a *App) Orders() []models.Order { return a.orders }

// SetSearchTerm and SetCategory drive the menu filter.
func (a *App) SetSearchTerm(term string) { a.searchTerm = term }

func (a *App) SetCategory(category string) { a.selectedCategory = category }

// VisibleMenu derives the filtered menu from the current filter inputs.
func (a *App) VisibleMenu() []models.MenuItem {
	return FilterMenu(a.menu, a.searchTerm, a.selectedCategory)
}

// AddToCart puts one unit of item in the cart and toasts.
func (a *App) AddToCart(item models.MenuItem) {
	a.cart.Add(item)
	if item.Name != nil {
		a.notifier.Notify("Added " + *item.Name)
	}
}

// RemoveFromCart takes one unit of the identified item out of the cart.
func (a *App) RemoveFromCart(menuItemID string) {
	a.cart.Remove(menuItemID)
}

// PlaceOrder submits the cart. On success the cart empties and the drawer
// closes; on failure everything stays as it was.
func (a *App) PlaceOrder(ctx context.Context) error {
	_, err := a.api.PlaceOrder(ctx, a.cart.Checkout())
	if err != nil {
		a.notifier.Alert("Order failed!")
		return err
	}
	a.notifier.Notify("Order sent to Kitchen!")
	a.cart.Clear()
	a.cartOpen = false
	return nil
}

// MarkServed clears a served order and refetches the kitchen list.
func (a *App) MarkServed(ctx context.Context, orderID string) {
	if err := a.api.CompleteOrder(ctx, orderID); err != nil {
		log.Println("Complete Order Error:", err)
		return
	}
	a.notifier.Notify("Order Served!")
	a.RefreshOrders(ctx)
}

// CreateMenuItem adds a dish and refetches the menu.
func (a *App) CreateMenuItem(ctx context.Context, item models.MenuItem) error {
	if _, err := a.api.AddMenuItem(ctx, item); err != nil {
		log.Println("Add Menu Error:", err)
		return err
	}
	a.notifier.Notify("Dish Added!")
	a.RefreshMenu(ctx)
	return nil
}

// UpdateMenuItem replaces a dish and refetches the menu.
func (a *App) UpdateMenuItem(ctx context.Context, id string, item models.MenuItem) error {
	if _, err := a.api.EditMenuItem(ctx, id, item); err != nil {
		log.Println("Edit Menu Error:", err)
		return err
	}
	a.notifier.Notify("Dish Updated!")
	a.RefreshMenu(ctx)
	return nil
}

// DeleteMenuItem removes a dish and refetches the menu.
func (a *App) DeleteMenuItem(ctx context.Context, id string) error {
	if err := a.api.DeleteMenuItem(ctx, id); err != nil {
		log.Println("Delete Menu Error:", err)
		return err
	}
	a.RefreshMenu(ctx)
	return nil
}
