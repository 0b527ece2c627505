package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subcommerce/internal/shared/constants"
)

func TestListUserPayments_DefaultsAndScope(t *testing.T) {
	e := newEnv(t)
	u, _, pay := e.seedCheckout(t, "cs_1")

	uc := NewListUserPaymentsUseCase(e.payments, e.log)
	res, err := uc.Execute(context.Background(), ListUserPaymentsQuery{UserID: u.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	assert.Equal(t, constants.DefaultPage, res.Page)
	assert.Equal(t, constants.DefaultPageSize, res.PerPage)
	require.Len(t, res.Payments, 1)
	assert.Equal(t, pay.ID(), res.Payments[0].ID())

	other, err := uc.Execute(context.Background(), ListUserPaymentsQuery{UserID: u.ID() + 1, PerPage: 1000})
	require.NoError(t, err)
	assert.Zero(t, other.Total)
	assert.Equal(t, constants.MaxPageSize, other.PerPage)
}
