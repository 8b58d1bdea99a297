// Package usecase validates user input and delegates to the backend.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/matt-dz/cookbook/internal/auth"
	"github.com/matt-dz/cookbook/internal/cart"
	"github.com/matt-dz/cookbook/internal/client"
	"github.com/matt-dz/cookbook/internal/filter"
	"github.com/matt-dz/cookbook/internal/listing"
	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/mealplan"
	"github.com/matt-dz/cookbook/internal/page"
	"github.com/matt-dz/cookbook/internal/recipe"
	"github.com/matt-dz/cookbook/internal/user"
	"github.com/matt-dz/cookbook/internal/validation"
)

var (
	ErrInvalidID  = errors.New("id must be positive")
	ErrEmailTaken = errors.New("email is already registered")
)

// Backend is the subset of the recipe backend the use cases need.
type Backend interface {
	listing.Fetcher
	GetRecipe(ctx context.Context, id int64) (recipe.Recipe, error)
	CreateRecipe(ctx context.Context, r recipe.Recipe) (recipe.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, r recipe.Recipe) (recipe.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	RecommendRecipes(ctx context.Context, ingredients []string) ([]recipe.Recipe, error)

	MealPlans(ctx context.Context, userID int64) ([]mealplan.MealPlan, error)
	MealPlan(ctx context.Context, id int64) (mealplan.MealPlan, error)
	CreateMealPlan(ctx context.Context, plan mealplan.MealPlan) (mealplan.MealPlan, error)
	UpdateMealPlan(ctx context.Context, id int64, plan mealplan.MealPlan) (mealplan.MealPlan, error)
	DeleteMealPlan(ctx context.Context, id int64) error
	AddMealPlanItem(ctx context.Context, planID int64, item mealplan.Item) (mealplan.Item, error)
	RemoveMealPlanItem(ctx context.Context, planID, itemID int64) error

	Cart(ctx context.Context, userID int64) (*cart.Cart, error)
	AddCartItem(ctx context.Context, userID int64, item cart.Item) (cart.Item, error)
	UpdateCartItem(ctx context.Context, userID, itemID int64, updates cart.ItemUpdate) (cart.Item, error)
	RemoveCartItem(ctx context.Context, userID, itemID int64) error
	ClearCart(ctx context.Context, userID int64) error

	Login(ctx context.Context, req user.LoginRequest) (auth.Session, error)
	Register(ctx context.Context, req user.RegisterRequest) (user.RegisterResponse, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (user.User, error)
	VerifyEmail(ctx context.Context, req user.VerifyEmailRequest) error
	ResendVerification(ctx context.Context, email string) (string, error)

	Ask(ctx context.Context, req client.ChatRequest) (client.ChatResponse, error)
}

// SessionClearer forgets a stored session.
type SessionClearer interface {
	Clear() error
}

type Service struct {
	backend Backend
	logger  *slog.Logger
}

func New(backend Backend, logger *slog.Logger) *Service {
	if logger == nil {
		logger = log.NullLogger()
	}
	return &Service{backend: backend, logger: logger}
}

func checkID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

// GetRecipes fetches one normalized page. The page is usable even when an
// error is returned.
func (s *Service) GetRecipes(ctx context.Context, criteria filter.Criteria) (page.Page[recipe.Recipe], error) {
	return listing.Fetch(ctx, s.backend, criteria)
}

func (s *Service) GetRecipe(ctx context.Context, id int64) (recipe.Recipe, error) {
	if err := checkID(id); err != nil {
		return recipe.Recipe{}, err
	}
	return s.backend.GetRecipe(ctx, id)
}

func (s *Service) CreateRecipe(ctx context.Context, r recipe.Recipe) (recipe.Recipe, error) {
	if err := validation.Check(r).Err(); err != nil {
		return recipe.Recipe{}, err
	}
	return s.backend.CreateRecipe(ctx, r)
}

func (s *Service) UpdateRecipe(ctx context.Context, id int64, r recipe.Recipe) (recipe.Recipe, error) {
	if err := checkID(id); err != nil {
		return recipe.Recipe{}, err
	}
	if err := validation.Check(r).Err(); err != nil {
		return recipe.Recipe{}, err
	}
	return s.backend.UpdateRecipe(ctx, id, r)
}

func (s *Service) DeleteRecipe(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.backend.DeleteRecipe(ctx, id)
}

// Recommend lists recipes for the given ingredients. Blank and repeated
// ingredients are dropped before validation.
func (s *Service) Recommend(ctx context.Context, req recipe.RecommendRequest) ([]recipe.Recipe, error) {
	req.Ingredients = filter.DedupeTags(req.Ingredients)
	if err := validation.Check(req).Err(); err != nil {
		return nil, err
	}
	return s.backend.RecommendRecipes(ctx, req.Ingredients)
}

// Me returns the account the session belongs to.
func (s *Service) Me(ctx context.Context) (user.User, error) {
	return s.backend.Me(ctx)
}

func (s *Service) MealPlans(ctx context.Context, userID int64) ([]mealplan.MealPlan, error) {
	if err := checkID(userID); err != nil {
		return nil, err
	}
	return s.backend.MealPlans(ctx, userID)
}

func (s *Service) MealPlan(ctx context.Context, id int64) (mealplan.MealPlan, error) {
	if err := checkID(id); err != nil {
		return mealplan.MealPlan{}, err
	}
	return s.backend.MealPlan(ctx, id)
}

func (s *Service) CreateMealPlan(ctx context.Context, plan mealplan.MealPlan) (mealplan.MealPlan, error) {
	if err := validation.Check(plan).Err(); err != nil {
		return mealplan.MealPlan{}, err
	}
	return s.backend.CreateMealPlan(ctx, plan)
}

func (s *Service) UpdateMealPlan(ctx context.Context, id int64, plan mealplan.MealPlan) (mealplan.MealPlan, error) {
	if err := checkID(id); err != nil {
		return mealplan.MealPlan{}, err
	}
	if err := validation.Check(plan).Err(); err != nil {
		return mealplan.MealPlan{}, err
	}
	return s.backend.UpdateMealPlan(ctx, id, plan)
}

func (s *Service) DeleteMealPlan(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.backend.DeleteMealPlan(ctx, id)
}

func (s *Service) RemoveMealPlanItem(ctx context.Context, planID, itemID int64) error {
	if err := errors.Join(checkID(planID), checkID(itemID)); err != nil {
		return err
	}
	return s.backend.RemoveMealPlanItem(ctx, planID, itemID)
}

func (s *Service) AddMealPlanItem(ctx context.Context, planID int64, item mealplan.Item) (mealplan.Item, error) {
	if err := checkID(planID); err != nil {
		return mealplan.Item{}, err
	}
	if err := validation.Check(item).Err(); err != nil {
		return mealplan.Item{}, err
	}
	return s.backend.AddMealPlanItem(ctx, planID, item)
}

func (s *Service) AddToCart(ctx context.Context, userID int64, item cart.Item) (cart.Item, error) {
	if err := checkID(userID); err != nil {
		return cart.Item{}, err
	}
	if err := validation.Check(item).Err(); err != nil {
		return cart.Item{}, err
	}
	return s.backend.AddCartItem(ctx, userID, item)
}

// Cart returns the user's cart, or nil when none exists yet.
func (s *Service) Cart(ctx context.Context, userID int64) (*cart.Cart, error) {
	if err := checkID(userID); err != nil {
		return nil, err
	}
	return s.backend.Cart(ctx, userID)
}

func (s *Service) UpdateCartItem(
	ctx context.Context, userID, itemID int64, updates cart.ItemUpdate,
) (cart.Item, error) {
	if err := errors.Join(checkID(userID), checkID(itemID)); err != nil {
		return cart.Item{}, err
	}
	if err := validation.Check(updates).Err(); err != nil {
		return cart.Item{}, err
	}
	return s.backend.UpdateCartItem(ctx, userID, itemID, updates)
}

func (s *Service) RemoveCartItem(ctx context.Context, userID, itemID int64) error {
	if err := errors.Join(checkID(userID), checkID(itemID)); err != nil {
		return err
	}
	return s.backend.RemoveCartItem(ctx, userID, itemID)
}

func (s *Service) ClearCart(ctx context.Context, userID int64) error {
	if err := checkID(userID); err != nil {
		return err
	}
	return s.backend.ClearCart(ctx, userID)
}

func (s *Service) Login(ctx context.Context, req user.LoginRequest) (auth.Session, error) {
	if err := validation.Check(req).Err(); err != nil {
		return auth.Anonymous(), err
	}
	return s.backend.Login(ctx, req)
}

// EmailExists reports whether an account already uses the address.
func (s *Service) EmailExists(ctx context.Context, req user.EmailRequest) (bool, error) {
	if err := validation.Check(req).Err(); err != nil {
		return false, err
	}
	return s.backend.EmailExists(ctx, req.Email)
}

// Register creates an account after making sure the address is free.
func (s *Service) Register(ctx context.Context, req user.RegisterRequest) (user.RegisterResponse, error) {
	if err := validation.Check(req).Err(); err != nil {
		return user.RegisterResponse{}, err
	}

	exists, err := s.backend.EmailExists(ctx, req.Email)
	if err != nil {
		return user.RegisterResponse{}, err
	}
	if exists {
		return user.RegisterResponse{}, ErrEmailTaken
	}

	return s.backend.Register(ctx, req)
}

func (s *Service) VerifyEmail(ctx context.Context, req user.VerifyEmailRequest) error {
	if err := validation.Check(req).Err(); err != nil {
		return err
	}
	return s.backend.VerifyEmail(ctx, req)
}

// ResendVerification asks the backend to mail a new verification link and
// returns its confirmation message.
func (s *Service) ResendVerification(ctx context.Context, req user.EmailRequest) (string, error) {
	if err := validation.Check(req).Err(); err != nil {
		return "", err
	}
	return s.backend.ResendVerification(ctx, req.Email)
}

// Logout ends the backend session and clears the local one. A backend
// failure is logged and does not keep the local session alive.
func (s *Service) Logout(ctx context.Context, store SessionClearer) error {
	if err := s.backend.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "backend logout failed", slog.Any("error", err))
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (s *Service) Chat(ctx context.Context, req client.ChatRequest) (client.ChatResponse, error) {
	if err := validation.Check(req).Err(); err != nil {
		return client.ChatResponse{}, err
	}
	return s.backend.Ask(ctx, req)
}
