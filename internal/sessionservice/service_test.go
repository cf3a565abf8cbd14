package sessionservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/randompkg"
)

func randomAccount() domain.Account {
	return domain.Account{
		Number:    randompkg.AccountNumber(),
		PIN:       randompkg.PIN(),
		Name:      randompkg.Name(),
		Balance:   "0",
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestBeginAccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountService := NewMockAccountService(ctrl)
	service := New(accountService, 0)

	number := randompkg.AccountNumber()

	accountService.EXPECT().Get(gomock.Any(), gomock.Eq(number)).Times(1).
		Return(domain.Account{}, domain.ErrAccountNotFound)

	attempt, err := service.Begin(context.Background(), number)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	require.Nil(t, attempt)
}

func TestSubmitFirstTry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testAccount := randomAccount()

	accountService := NewMockAccountService(ctrl)
	service := New(accountService, 0)

	accountService.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount.Number)).Times(1).
		Return(testAccount, nil)

	attempt, err := service.Begin(context.Background(), testAccount.Number)
	require.NoError(t, err)
	require.Equal(t, DefaultMaxAttempts, attempt.AttemptsLeft())

	sess, err := attempt.Submit(context.Background(), testAccount.PIN)
	require.NoError(t, err)
	require.Equal(t, testAccount.Number, sess.AccountNumber)
	require.Equal(t, testAccount.Name, sess.Name)
	require.NotZero(t, sess.ID)
	require.NotZero(t, sess.CreatedAt)
}

func TestSubmitLastTry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testAccount := randomAccount()
	wrongPin := "0000"
	if wrongPin == testAccount.PIN {
		wrongPin = "0001"
	}

	accountService := NewMockAccountService(ctrl)
	service := New(accountService, 0)

	accountService.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount.Number)).Times(1).
		Return(testAccount, nil)

	attempt, err := service.Begin(context.Background(), testAccount.Number)
	require.NoError(t, err)

	for i := 0; i < DefaultMaxAttempts-1; i++ {
		_, err = attempt.Submit(context.Background(), wrongPin)
		require.ErrorIs(t, err, domain.ErrIncorrectPin)
	}

	require.Equal(t, 1, attempt.AttemptsLeft())

	sess, err := attempt.Submit(context.Background(), testAccount.PIN)
	require.NoError(t, err)
	require.Equal(t, testAccount.Number, sess.AccountNumber)
}

func TestSubmitExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testAccount := randomAccount()
	wrongPin := "0000"
	if wrongPin == testAccount.PIN {
		wrongPin = "0001"
	}

	accountService := NewMockAccountService(ctrl)
	service := New(accountService, 0)

	accountService.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount.Number)).Times(2).
		Return(testAccount, nil)

	attempt, err := service.Begin(context.Background(), testAccount.Number)
	require.NoError(t, err)

	for i := 0; i < DefaultMaxAttempts-1; i++ {
		sess, err := attempt.Submit(context.Background(), wrongPin)
		require.ErrorIs(t, err, domain.ErrIncorrectPin)
		require.Empty(t, sess)
	}

	// The last mismatch spends the budget and never grants a session.
	sess, err := attempt.Submit(context.Background(), wrongPin)
	require.ErrorIs(t, err, domain.ErrTooManyAttempts)
	require.Empty(t, sess)

	// An exhausted attempt rejects even the correct PIN.
	sess, err = attempt.Submit(context.Background(), testAccount.PIN)
	require.ErrorIs(t, err, domain.ErrTooManyAttempts)
	require.Empty(t, sess)

	// A fresh Begin arms the full budget again.
	attempt, err = service.Begin(context.Background(), testAccount.Number)
	require.NoError(t, err)
	require.Equal(t, DefaultMaxAttempts, attempt.AttemptsLeft())

	sess, err = attempt.Submit(context.Background(), testAccount.PIN)
	require.NoError(t, err)
	require.Equal(t, testAccount.Number, sess.AccountNumber)
}
