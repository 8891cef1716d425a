package response

import (
	"rubrox/internal/domain/entities"
	"rubrox/internal/usecase"
	"testing"
	"time"
)

func newLine(t *testing.T, code, parentID string) *entities.BudgetLine {
	t.Helper()
	c, err := entities.NewBudgetCode(code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, err := entities.NewBudgetLine(c, "Salaries", "payroll", 2025, entities.LineTypeOperating, entities.FundingSourceNation, parentID, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return l
}

func money(t *testing.T, v string) entities.Money {
	t.Helper()
	m, err := entities.NewMoneyFromString(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestFromBudgetLine(t *testing.T) {
	l := newLine(t, "02.01", "")
	if err := l.AssignBudget(money(t, "1000"), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.ReserveBalance(money(t, "300"), "CDP-2025-0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.ExecuteBalance(money(t, "125"), "CRP-2025-0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FromBudgetLine(l)
	if res.ID != l.ID() || res.Code != "02.01" || res.FiscalYear != 2025 {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.InitialBalance != "1000.00" || res.CommittedBalance != "175.00" || res.ExecutedBalance != "125.00" {
		t.Fatalf("unexpected balances: %+v", res)
	}
	if res.AvailableBalance != "700.00" || res.ExecutionPercent != "12.50" {
		t.Fatalf("unexpected derived fields: %+v", res)
	}
	if res.State != "active" || res.LineType != "operating" || res.FundingSource != "nation" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ChildIDs == nil {
		t.Fatalf("expected empty child ids to render as a list")
	}
}

func TestFromHierarchy(t *testing.T) {
	root := newLine(t, "02", "")
	child := newLine(t, "02.01", root.ID())
	nodes := []*usecase.LineNode{{Line: root, Children: []*usecase.LineNode{{Line: child}}}}

	res := FromHierarchy(nodes)
	if len(res) != 1 || res[0].Code != "02" {
		t.Fatalf("unexpected roots: %+v", res)
	}
	if len(res[0].Children) != 1 || res[0].Children[0].ParentID != root.ID() {
		t.Fatalf("unexpected children: %+v", res[0].Children)
	}
	if res[0].Children[0].Children == nil {
		t.Fatalf("expected leaf children to render as an empty list")
	}
}

func TestFromMovement(t *testing.T) {
	due := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	m, err := entities.NewMovement("line-1", entities.MovementTypeCDP, money(t, "300"), "contract", "CDP-2025-0001", "user-1", "", &due)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FromMovement(m)
	if res.Type != "cdp" || res.Amount != "300.00" || res.Numbering != "CDP-2025-0001" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.DueDate == nil || !res.DueDate.Equal(due) || res.State != "active" {
		t.Fatalf("unexpected due date or state: %+v", res)
	}
	if got := FromMovements(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestFromApprovalFlow(t *testing.T) {
	f, err := entities.NewApprovalFlow(entities.FlowTypeCDPRegistration, "user-1", `{"line_id":"line-1","amount":"10"}`,
		[]string{"analyst", "director"}, "line-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Approve("approver-1", "analyst", "ok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Return("approver-2", "director", "missing annex"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FromApprovalFlow(f)
	if res.FlowType != "cdp_registration" || res.State != "returned" || res.CurrentStep != 1 {
		t.Fatalf("unexpected flow fields: %+v", res)
	}
	if len(res.Steps) != 2 || res.Steps[0].RequiredRole != "analyst" {
		t.Fatalf("unexpected steps: %+v", res.Steps)
	}
	if len(res.Steps[0].History) != 1 || res.Steps[0].History[0].ApproverID != "approver-1" {
		t.Fatalf("expected the re-opened approval in the history, got %+v", res.Steps[0].History)
	}
	if string(res.Payload) != `{"line_id":"line-1","amount":"10"}` {
		t.Fatalf("unexpected payload: %s", res.Payload)
	}
}
