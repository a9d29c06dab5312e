package repo

import (
	"github.com/avolkhin/luckydraw/internal/pg"
	accountrepo "github.com/avolkhin/luckydraw/internal/repo/account-repo"
	ledgerrepo "github.com/avolkhin/luckydraw/internal/repo/ledger-repo"
	participationrepo "github.com/avolkhin/luckydraw/internal/repo/participation-repo"
	productrepo "github.com/avolkhin/luckydraw/internal/repo/product-repo"
	resultrepo "github.com/avolkhin/luckydraw/internal/repo/result-repo"
	roundrepo "github.com/avolkhin/luckydraw/internal/repo/round-repo"
)

type Repositories struct {
	AccountRepo       *accountrepo.Repository
	LedgerRepo        *ledgerrepo.Repository
	ProductRepo       *productrepo.Repository
	RoundRepo         *roundrepo.Repository
	ParticipationRepo *participationrepo.Repository
	ResultRepo        *resultrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:       accountrepo.New(conn),
		LedgerRepo:        ledgerrepo.New(conn),
		ProductRepo:       productrepo.New(conn),
		RoundRepo:         roundrepo.New(conn),
		ParticipationRepo: participationrepo.New(conn),
		ResultRepo:        resultrepo.New(conn),
	}
}
