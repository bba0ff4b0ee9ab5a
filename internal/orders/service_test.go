package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/storefront-backend/pkg/checkout"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

func sampleInput(userID uuid.UUID) CreateOrderInput {
	summary, result := checkout.Evaluate(checkout.CheckoutInput{
		ShippingAddress: "1 Main St",
		City:            "Portland",
		ZipCode:         "97201",
		CardNumber:      "4111 1111 1111 1111",
		ExpiryDate:      "01/30",
		CVV:             "321",
		CardholderName:  "Pat Doe",
		CartSubtotal:    decimal.NewFromInt(40),
	})
	if result != nil {
		panic(result)
	}
	return CreateOrderInput{
		UserID: userID,
		Items: []LineItem{{
			ProductID: uuid.New(),
			Name:      "Desk Lamp",
			UnitPrice: decimal.NewFromInt(20),
			Quantity:  2,
			LineTotal: decimal.NewFromInt(40),
		}},
		Summary: *summary,
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()
	clock := &fakeClock{current: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc, err := NewService(NewRepository(), clock.Now)
	require.NoError(t, err)
	return svc
}

func TestCreateCopiesSummary(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	user := uuid.New()

	order, err := svc.Create(context.Background(), sampleInput(user))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, StatusProcessing, order.Status)
	assert.Equal(t, "1 Main St, Portland, 97201", order.ShippingAddress)
	assert.Equal(t, "****1111", order.PaymentMethod)
	assert.Equal(t, "53.19", order.Total.StringFixed(2))
	assert.Equal(t, "3.20", order.Tax.StringFixed(2))
}

func TestCreateRequiresItems(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	input := sampleInput(uuid.New())
	input.Items = nil

	_, err := svc.Create(context.Background(), input)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestListByUserNewestFirst(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	user := uuid.New()

	first, err := svc.Create(ctx, sampleInput(user))
	require.NoError(t, err)
	second, err := svc.Create(ctx, sampleInput(user))
	require.NoError(t, err)
	_, err = svc.Create(ctx, sampleInput(uuid.New()))
	require.NoError(t, err)

	list, err := svc.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListPageFollowsCursor(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	user := uuid.New()

	created := make([]uuid.UUID, 0, 3)
	for i := 0; i < 3; i++ {
		order, err := svc.Create(ctx, sampleInput(user))
		require.NoError(t, err)
		created = append(created, order.ID)
	}

	first, err := svc.ListPage(ctx, user, "", pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	assert.Equal(t, created[2], first.Items[0].ID)
	require.NotEmpty(t, first.NextCursor)

	second, err := svc.ListPage(ctx, user, "", pagination.Params{Limit: 2, Cursor: first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, created[0], second.Items[0].ID)
	assert.Empty(t, second.NextCursor)

	cancelled, err := svc.UpdateStatus(ctx, user, created[1], StatusCancelled)
	require.NoError(t, err)
	onlyCancelled, err := svc.ListPage(ctx, user, StatusCancelled, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, onlyCancelled.Items, 1)
	assert.Equal(t, cancelled.ID, onlyCancelled.Items[0].ID)

	_, err = svc.ListPage(ctx, user, "", pagination.Params{Cursor: "not-base64!"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestGetHidesOtherUsersOrders(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, sampleInput(uuid.New()))
	require.NoError(t, err)

	_, err = svc.Get(ctx, uuid.New(), order.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestUpdateStatusTransitions(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	user := uuid.New()

	order, err := svc.Create(ctx, sampleInput(user))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, user, order.ID, StatusDelivered)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	updated, err := svc.UpdateStatus(ctx, user, order.ID, StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, updated.Status)

	_, err = svc.UpdateStatus(ctx, user, order.ID, StatusCancelled)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	stored, err := svc.Get(ctx, user, order.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, stored.Status)
}

func TestUpdateStatusConcurrentCancelsSucceedOnce(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()
	user := uuid.New()

	order, err := svc.Create(ctx, sampleInput(user))
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.UpdateStatus(ctx, user, order.ID, StatusCancelled)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
	}
	assert.Equal(t, 1, succeeded)
}

func TestRepositoryTransitionRejectsStaleStatus(t *testing.T) {
	t.Parallel()
	repo := NewRepository()
	ctx := context.Background()
	order := Order{ID: uuid.New(), UserID: uuid.New(), Status: StatusProcessing}
	require.NoError(t, repo.Create(ctx, order))

	moved, err := repo.Transition(ctx, order.ID, StatusProcessing, StatusShipped)
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = repo.Transition(ctx, order.ID, StatusProcessing, StatusCancelled)
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = repo.Transition(ctx, uuid.New(), StatusProcessing, StatusCancelled)
	require.NoError(t, err)
	assert.False(t, moved)

	stored, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, stored.Status)
}
