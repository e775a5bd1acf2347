package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/usecase"
	"github.com/iho/finacct/internal/usecase/mocks"
)

func strPtr(s string) *string {
	return &s
}

func TestGlClassUseCase_IsAccountOfClass(t *testing.T) {
	tests := []struct {
		name       string
		accountID  string
		classID    string
		setupMocks func(*mocks.MockGlAccountRepository)
		want       bool
		wantErr    error
	}{
		{
			name:      "direct class match",
			accountID: "gl-100",
			classID:   "DEBIT",
			setupMocks: func(glRepo *mocks.MockGlAccountRepository) {
				glRepo.EXPECT().GetAccount(gomock.Any(), "gl-100").Return(
					&domain.GlAccount{ID: "gl-100", AccountClassID: "DEBIT"}, nil)
				glRepo.EXPECT().GetClass(gomock.Any(), "DEBIT").Return(
					&domain.GlAccountClass{ID: "DEBIT"}, nil)
			},
			want: true,
		},
		{
			name:      "match through ancestor chain",
			accountID: "gl-200",
			classID:   "ASSET",
			setupMocks: func(glRepo *mocks.MockGlAccountRepository) {
				glRepo.EXPECT().GetAccount(gomock.Any(), "gl-200").Return(
					&domain.GlAccount{ID: "gl-200", AccountClassID: "CASH"}, nil)
				glRepo.EXPECT().GetClass(gomock.Any(), "CASH").Return(
					&domain.GlAccountClass{ID: "CASH", ParentClassID: strPtr("CURRENT_ASSET")}, nil)
				glRepo.EXPECT().GetClass(gomock.Any(), "CURRENT_ASSET").Return(
					&domain.GlAccountClass{ID: "CURRENT_ASSET", ParentClassID: strPtr("ASSET")}, nil)
			},
			want: true,
		},
		{
			name:      "target absent from chain",
			accountID: "gl-200",
			classID:   "LIABILITY",
			setupMocks: func(glRepo *mocks.MockGlAccountRepository) {
				glRepo.EXPECT().GetAccount(gomock.Any(), "gl-200").Return(
					&domain.GlAccount{ID: "gl-200", AccountClassID: "CASH"}, nil)
				glRepo.EXPECT().GetClass(gomock.Any(), "CASH").Return(
					&domain.GlAccountClass{ID: "CASH", ParentClassID: strPtr("ASSET")}, nil)
				glRepo.EXPECT().GetClass(gomock.Any(), "ASSET").Return(
					&domain.GlAccountClass{ID: "ASSET"}, nil)
			},
			want: false,
		},
		{
			name:      "absent account is a plain negative",
			accountID: "gl-missing",
			classID:   "DEBIT",
			setupMocks: func(glRepo *mocks.MockGlAccountRepository) {
				glRepo.EXPECT().GetAccount(gomock.Any(), "gl-missing").Return(
					nil, domain.ErrGlAccountNotFound)
			},
			want: false,
		},
		{
			name:      "broken class reference is an integrity fault",
			accountID: "gl-300",
			classID:   "DEBIT",
			setupMocks: func(glRepo *mocks.MockGlAccountRepository) {
				glRepo.EXPECT().GetAccount(gomock.Any(), "gl-300").Return(
					&domain.GlAccount{ID: "gl-300", AccountClassID: "GONE"}, nil)
				glRepo.EXPECT().GetClass(gomock.Any(), "GONE").Return(
					nil, domain.ErrGlAccountClassNotFound)
			},
			want:    false,
			wantErr: domain.ErrGlAccountClassNotFound,
		},
		{
			name:      "cycle in hierarchy fails fast",
			accountID: "gl-400",
			classID:   "NOWHERE",
			setupMocks: func(glRepo *mocks.MockGlAccountRepository) {
				glRepo.EXPECT().GetAccount(gomock.Any(), "gl-400").Return(
					&domain.GlAccount{ID: "gl-400", AccountClassID: "A"}, nil)
				glRepo.EXPECT().GetClass(gomock.Any(), "A").Return(
					&domain.GlAccountClass{ID: "A", ParentClassID: strPtr("B")}, nil).Times(2)
				glRepo.EXPECT().GetClass(gomock.Any(), "B").Return(
					&domain.GlAccountClass{ID: "B", ParentClassID: strPtr("A")}, nil)
			},
			want:    false,
			wantErr: domain.ErrGlAccountClassCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			glRepo := mocks.NewMockGlAccountRepository(ctrl)
			tt.setupMocks(glRepo)

			uc := usecase.NewGlClassUseCase(glRepo, nil)
			got, err := uc.IsAccountOfClass(context.Background(), tt.accountID, tt.classID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGlClassUseCase_IsDebitAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	glRepo := mocks.NewMockGlAccountRepository(ctrl)
	glRepo.EXPECT().GetAccount(gomock.Any(), "gl-100").Return(
		&domain.GlAccount{ID: "gl-100", AccountClassID: "CASH"}, nil)
	glRepo.EXPECT().GetClass(gomock.Any(), "CASH").Return(
		&domain.GlAccountClass{ID: "CASH", ParentClassID: strPtr(domain.AccountClassDebit)}, nil)

	uc := usecase.NewGlClassUseCase(glRepo, nil)

	got, err := uc.IsDebitAccount(context.Background(), "gl-100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected debit account")
	}
}

func TestGlClassUseCase_CacheHitSkipsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached, _ := json.Marshal(&domain.GlAccountClass{ID: "DEBIT"})

	glRepo := mocks.NewMockGlAccountRepository(ctrl)
	glRepo.EXPECT().GetAccount(gomock.Any(), "gl-100").Return(
		&domain.GlAccount{ID: "gl-100", AccountClassID: "DEBIT"}, nil)

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "glclass:DEBIT").Return(cached, nil)

	uc := usecase.NewGlClassUseCase(glRepo, cache)

	got, err := uc.IsAccountOfClass(context.Background(), "gl-100", "DEBIT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected match from cached class")
	}
}
