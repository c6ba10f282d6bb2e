package ledger

import (
	"sort"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

// Snapshot is the slice of request history a user's ledger is rebuilt from.
type Snapshot struct {
	User     model.User
	Issues   []model.IssueRequest
	Outgoing []model.BuyRequest
	Incoming []model.BuyRequest
	Retired  map[string]struct{}
}

// Reconcile replays a snapshot into the user's ledger. Every relevant credit
// lands in exactly one bucket: pending, retired, transferred away or active.
// Rejected requests never count.
func Reconcile(s Snapshot) model.UserLedger {
	transferredAway := make(map[string]struct{}, len(s.Outgoing))
	for _, t := range s.Outgoing {
		transferredAway[t.CreditID] = struct{}{}
	}
	retired := func(id string) bool {
		_, ok := s.Retired[id]
		return ok
	}

	var (
		summary model.LedgerSummary
		credits = []model.CreditBalance{}
	)

	switch s.User.Role {
	case model.RolePlant:
		for _, req := range s.Issues {
			switch req.Status {
			case model.IssuePending:
				summary.PendingAmount += req.Amount
				summary.TotalAmount += req.Amount
			case model.IssueIssued:
				_, gone := transferredAway[req.ID]
				switch {
				case retired(req.ID):
					summary.RetiredAmount += req.Amount
					summary.TotalAmount += req.Amount
				case !gone:
					summary.ActiveAmount += req.Amount
					summary.TotalAmount += req.Amount
					credits = append(credits, model.CreditBalance{ID: req.ID, Amount: req.Amount})
				}
			}
		}
		generated, transferred := s.User.Lifetime.Generated, s.User.Lifetime.Transferred
		summary.LifetimeGenerated = &generated
		summary.LifetimeTransferred = &transferred

	case model.RoleIndustry:
		for _, t := range s.Incoming {
			if t.Amount <= 0 {
				continue
			}
			if retired(t.CreditID) {
				summary.RetiredAmount += t.Amount
			} else {
				summary.ActiveAmount += t.Amount
				credits = append(credits, model.CreditBalance{ID: t.CreditID, Amount: t.Amount})
			}
			summary.TotalAmount += t.Amount
		}
		retiredTotal, bought := s.User.Lifetime.Retired, s.User.Lifetime.Bought
		summary.LifetimeRetired = &retiredTotal
		summary.LifetimeBought = &bought
	}

	return model.UserLedger{
		Username:      s.User.Username,
		Role:          s.User.Role,
		CompanyName:   s.User.CompanyName,
		WalletAddress: s.User.WalletAddress,
		Summary:       summary,
		Credits:       credits,
		Transactions:  history(s, transferredAway),
	}
}

// history flattens issue, outgoing and incoming records newest first and
// drops zero amounts.
func history(s Snapshot, transferredAway map[string]struct{}) []model.LedgerTransaction {
	txs := make([]model.LedgerTransaction, 0, len(s.Issues)+len(s.Outgoing)+len(s.Incoming))

	for _, req := range s.Issues {
		status := string(req.Status)
		if _, gone := transferredAway[req.ID]; gone && s.User.Role == model.RolePlant && req.Status == model.IssueIssued {
			status = model.StatusTransferredIssued
		}
		txs = append(txs, model.LedgerTransaction{
			ID:        req.ID,
			Type:      model.TransactionIssue,
			CreditID:  req.ID,
			Amount:    req.Amount,
			Status:    status,
			Anomaly:   req.Anomaly,
			TxnHash:   req.TxnHash,
			ActionBy:  req.ActionByUsername,
			CreatedAt: req.CreatedAt,
		})
	}
	for _, t := range s.Outgoing {
		txs = append(txs, transfer(t, model.TransactionTransferOut))
	}
	for _, t := range s.Incoming {
		txs = append(txs, transfer(t, model.TransactionTransferIn))
	}

	kept := txs[:0]
	for _, tx := range txs {
		if tx.Amount > 0 {
			kept = append(kept, tx)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if !kept[i].CreatedAt.Equal(kept[j].CreatedAt) {
			return kept[i].CreatedAt.After(kept[j].CreatedAt)
		}
		return kept[i].ID < kept[j].ID
	})
	return kept
}

func transfer(t model.BuyRequest, typ model.TransactionType) model.LedgerTransaction {
	tx := model.LedgerTransaction{
		ID:        t.ID,
		Type:      typ,
		CreditID:  t.CreditID,
		Amount:    t.Amount,
		Status:    string(model.BuyTransferred),
		Anomaly:   t.Anomaly,
		TxnHash:   t.TxnHash,
		CreatedAt: t.CreatedAt,
	}
	if typ == model.TransactionTransferOut {
		tx.To = t.ToUsername
	} else {
		tx.From = t.FromUsername
	}
	return tx
}

// ReplayHoldings rebuilds the custody projection from the request logs:
// every issued credit starts with its issuer, moves with each transfer in
// commit order and is marked retired once its retire request was accepted.
func ReplayHoldings(issued []model.IssueRequest, transfers []model.BuyRequest, retired []string) []model.CreditHolding {
	byCredit := make(map[string]*model.CreditHolding, len(issued))
	order := make([]string, 0, len(issued))
	for _, req := range issued {
		if req.Status != model.IssueIssued {
			continue
		}
		if _, seen := byCredit[req.ID]; seen {
			continue
		}
		byCredit[req.ID] = &model.CreditHolding{
			CreditID:   req.ID,
			IssuerID:   req.UserID,
			HolderID:   req.UserID,
			Amount:     req.Amount,
			LastTxHash: req.TxnHash,
			UpdatedAt:  req.UpdatedAt,
		}
		order = append(order, req.ID)
	}

	sorted := append([]model.BuyRequest(nil), transfers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.Before(sorted[j].UpdatedAt)
	})
	for _, t := range sorted {
		h, ok := byCredit[t.CreditID]
		if !ok || t.Status != model.BuyTransferred {
			continue
		}
		h.HolderID = t.ToID
		h.LastTxHash = t.TxnHash
		if t.UpdatedAt.After(h.UpdatedAt) {
			h.UpdatedAt = t.UpdatedAt
		}
	}
	for _, id := range retired {
		if h, ok := byCredit[id]; ok {
			h.Retired = true
		}
	}

	out := make([]model.CreditHolding, 0, len(order))
	for _, id := range order {
		out = append(out, *byCredit[id])
	}
	return out
}
