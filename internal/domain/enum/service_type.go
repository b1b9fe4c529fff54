package enum

// ServiceType names the kinds of work the company performs. Stored as
// text; new service types can be added without a migration.
type ServiceType string

const (
	ServiceBorewellInstallation ServiceType = "Borewell Installation"
	ServicePumpInstallation     ServiceType = "Pump Installation"
	ServiceBorewellRepair       ServiceType = "Borewell Repair"
	ServicePumpRepair           ServiceType = "Pump Repair"
	ServiceMaintenance          ServiceType = "Maintenance"
	ServiceConsultation         ServiceType = "Consultation"
)

// HasDepth reports whether the service type carries a borewell depth and
// therefore attracts the per-foot drilling surcharge.
func (s ServiceType) HasDepth() bool {
	return s == ServiceBorewellInstallation
}

// Known reports whether the service type is one of the defined kinds.
func (s ServiceType) Known() bool {
	switch s {
	case ServiceBorewellInstallation, ServicePumpInstallation,
		ServiceBorewellRepair, ServicePumpRepair,
		ServiceMaintenance, ServiceConsultation:
		return true
	}
	return false
}
