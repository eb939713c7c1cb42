package models

// Machine is one row of the primary machine table.
type Machine struct {
	// Fields holds every primary field in vocabulary order, nil when absent.
	Fields Fields
	// SheetName is the linked machine sheet, empty when the row has no
	// valid link.
	SheetName string
	// Maintenance is the data read from the linked sheet, nil without a link.
	Maintenance *MaintenanceData
}

// MarshalJSON implements json.Marshaler. Primary fields come first,
// followed by "Sheet Name" and "MaintenanceData" when present.
func (m *Machine) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	for _, f := range m.Fields {
		if err := w.field(f.Name, Scalar(f.Value)); err != nil {
			return nil, err
		}
	}
	if m.SheetName != "" {
		if err := w.field("Sheet Name", m.SheetName); err != nil {
			return nil, err
		}
	}
	if m.Maintenance != nil {
		if err := w.field("MaintenanceData", m.Maintenance); err != nil {
			return nil, err
		}
	}
	return w.close(), nil
}

// MaintenanceData is the content of one machine sheet.
type MaintenanceData struct {
	// Fields holds every vertical field in vocabulary order.
	Fields Fields
	// Parts lists the part columns left to right.
	Parts []*Part
}

// MarshalJSON implements json.Marshaler.
func (d *MaintenanceData) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	for _, f := range d.Fields {
		if err := w.field(f.Name, Scalar(f.Value)); err != nil {
			return nil, err
		}
	}
	parts := d.Parts
	if parts == nil {
		parts = []*Part{}
	}
	if err := w.field("Parts", parts); err != nil {
		return nil, err
	}
	return w.close(), nil
}
