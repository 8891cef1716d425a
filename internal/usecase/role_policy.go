package usecase

import "rubrox/internal/domain/entities"

// Roles known to the identity provider.
const (
	RoleBudgetAdmin     = "admin_presupuestal"
	RoleAnalyst         = "analista"
	RoleSupervisor      = "supervisor"
	RoleSpendingOfficer = "ordenador_gasto"
	RoleAuditor         = "auditor"
)

// RolePolicy is the ordered list of step roles per flow type.
type RolePolicy map[entities.FlowType][]string

func DefaultRolePolicy() RolePolicy {
	return RolePolicy{
		entities.FlowTypeLineCreation:      {RoleAnalyst, RoleSupervisor},
		entities.FlowTypeBudgetAssignment:  {RoleAnalyst, RoleSupervisor, RoleSpendingOfficer},
		entities.FlowTypeCDPRegistration:   {RoleAnalyst, RoleSpendingOfficer},
		entities.FlowTypeCRPRegistration:   {RoleSupervisor, RoleSpendingOfficer},
		entities.FlowTypeMovementAnnulment: {RoleSupervisor, RoleSpendingOfficer},
		entities.FlowTypeLineClosure:       {RoleSupervisor, RoleBudgetAdmin},
		entities.FlowTypeTransfer:          {RoleAnalyst, RoleSupervisor, RoleSpendingOfficer},
	}
}

// WithOverrides returns a copy of p where every flow type present in
// overrides (keyed by flow type name) uses the given roles.
func (p RolePolicy) WithOverrides(overrides map[string][]string) (RolePolicy, error) {
	out := make(RolePolicy, len(p))
	for t, roles := range p {
		out[t] = append([]string(nil), roles...)
	}
	for name, roles := range overrides {
		t, err := entities.ParseFlowType(name)
		if err != nil {
			return nil, err
		}
		if len(roles) == 0 {
			return nil, ErrNoStepRoles.Withf("no approval roles configured for flow type %q", t)
		}
		out[t] = append([]string(nil), roles...)
	}
	return out, nil
}

func (p RolePolicy) StepsFor(t entities.FlowType) []string {
	return append([]string(nil), p[t]...)
}
