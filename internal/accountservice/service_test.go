package accountservice

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

func TestCreate(t *testing.T) {
	testAccount := randomAccount()

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(account domain.Account, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				arg := domain.CreateAccountParams{
					Number: testAccount.Number,
					PIN:    testAccount.PIN,
					Name:   testAccount.Name,
				}

				repo.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).Times(1).Return(testAccount, nil)
			},
			checkResponse: func(account domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, testAccount, account)
			},
		},
		{
			name: "DuplicateAccount",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.Account{}, domain.ErrDuplicateAccount)
			},
			checkResponse: func(account domain.Account, err error) {
				require.ErrorIs(t, err, domain.ErrDuplicateAccount)
				require.Empty(t, account)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			account, err := service.Create(context.Background(), testAccount.Number, testAccount.PIN, testAccount.Name)
			tc.checkResponse(account, err)
		})
	}
}

func TestGet(t *testing.T) {
	testAccount := randomAccount()

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(account domain.Account, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount.Number)).Times(1).Return(testAccount, nil)
			},
			checkResponse: func(account domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, testAccount, account)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount.Number)).Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			checkResponse: func(account domain.Account, err error) {
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
				require.Empty(t, account)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			account, err := service.Get(context.Background(), testAccount.Number)
			tc.checkResponse(account, err)
		})
	}
}
