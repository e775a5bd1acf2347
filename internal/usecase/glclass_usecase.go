package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iho/finacct/internal/domain"
)

// GlClassUseCase answers whether a ledger account belongs, directly or
// transitively, to a named account classification.
type GlClassUseCase struct {
	glRepo GlAccountRepository
	cache  Cache
}

// NewGlClassUseCase creates a new GlClassUseCase. The cache is optional.
func NewGlClassUseCase(glRepo GlAccountRepository, cache Cache) *GlClassUseCase {
	return &GlClassUseCase{
		glRepo: glRepo,
		cache:  cache,
	}
}

// IsAccountOfClass walks the account's classification ancestor chain
// looking for classID. An absent account is an ordinary negative answer.
// An absent classification node is an integrity fault: the account carries
// a broken reference. The walk keeps a visited set; a re-visited node
// means the hierarchy has a cycle and the walk fails fast instead of
// looping.
func (uc *GlClassUseCase) IsAccountOfClass(ctx context.Context, accountID, classID string) (bool, error) {
	account, err := uc.glRepo.GetAccount(ctx, accountID)
	if errors.Is(err, domain.ErrGlAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	current, err := uc.getClass(ctx, account.AccountClassID)
	if err != nil {
		return false, err
	}

	visited := make(map[string]bool)
	for {
		if current.ID == classID {
			return true, nil
		}

		if visited[current.ID] {
			return false, fmt.Errorf("%w: revisited class %s", domain.ErrGlAccountClassCycle, current.ID)
		}
		visited[current.ID] = true

		if current.ParentClassID == nil {
			return false, nil
		}
		if *current.ParentClassID == classID {
			return true, nil
		}

		current, err = uc.getClass(ctx, *current.ParentClassID)
		if err != nil {
			return false, err
		}
	}
}

// IsDebitAccount reports whether the account is classified under DEBIT.
func (uc *GlClassUseCase) IsDebitAccount(ctx context.Context, accountID string) (bool, error) {
	return uc.IsAccountOfClass(ctx, accountID, domain.AccountClassDebit)
}

// getClass fetches a classification node, read-through cached. Cache
// failures fall back to the repository silently; the cache is an
// optimization, not a source of truth.
func (uc *GlClassUseCase) getClass(ctx context.Context, classID string) (*domain.GlAccountClass, error) {
	key := "glclass:" + classID

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
			var class domain.GlAccountClass
			if err := json.Unmarshal(data, &class); err == nil {
				return &class, nil
			}
		}
	}

	class, err := uc.glRepo.GetClass(ctx, classID)
	if errors.Is(err, domain.ErrGlAccountClassNotFound) {
		return nil, fmt.Errorf("%w: class %s", domain.ErrGlAccountClassNotFound, classID)
	}
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(class); err == nil {
			_ = uc.cache.Set(ctx, key, data, GlClassCacheTTL)
		}
	}

	return class, nil
}
