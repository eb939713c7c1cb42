package output

import (
	"strings"

	toon "github.com/mateuszkardas/toon-go"
	"github.com/mateuszkardas/toon-go/encode"
	"github.com/mateuszkardas/toon-go/shared"
	"github.com/ukaji3/pmsheet-go/pkg/pmsheet/models"
)

const toonIndent = 2

var toonDelimiter = byte(toon.DefaultDelimiter)

// historyFields is the tabular header of a part's history rows.
var historyFields = []string{
	"Last PM Done",
	"Technician",
	"Work Order",
	"Po Number",
	"Maintenance Type",
	"Completion Status",
}

// member is one key of an ordered TOON object. The value is a primitive,
// an object, a list or a table.
type member struct {
	key   string
	value interface{}
}

type object []member

// list is an array of objects written as "- " items.
type list []object

// table is an array of uniform primitive rows.
type table struct {
	fields []string
	rows   [][]interface{}
}

// encodeMachines writes the machine list as a TOON document. Objects keep
// the order of their Fields; toon.Marshal would walk Go maps instead.
func encodeMachines(machines []*models.Machine) string {
	w := encode.NewLineWriter(toonIndent)
	w.Push(0, arrayHeader("", len(machines), nil))
	for _, m := range machines {
		writeListItem(w, 1, machineObject(m))
	}
	return w.String()
}

func machineObject(m *models.Machine) object {
	obj := fieldsObject(m.Fields)
	if m.SheetName != "" {
		obj = append(obj, member{"Sheet Name", m.SheetName})
	}
	if m.Maintenance != nil {
		data := fieldsObject(m.Maintenance.Fields)
		parts := make(list, 0, len(m.Maintenance.Parts))
		for _, p := range m.Maintenance.Parts {
			parts = append(parts, partObject(p))
		}
		data = append(data, member{"Parts", parts})
		obj = append(obj, member{"MaintenanceData", data})
	}
	return obj
}

func partObject(p *models.Part) object {
	obj := object{
		{"Part Name", p.Name},
		{"Maintenance", fieldsObject(p.Maintenance)},
	}
	if len(p.History) > 0 {
		rows := make([][]interface{}, 0, len(p.History))
		for _, e := range p.History {
			rows = append(rows, []interface{}{
				models.Scalar(e.Date),
				models.Scalar(e.Technician),
				models.Scalar(e.WorkOrder),
				models.Scalar(e.PONumber),
				e.MaintenanceType,
				e.CompletionStatus,
			})
		}
		obj = append(obj, member{"Historical_Maintenance", table{fields: historyFields, rows: rows}})
	}
	return obj
}

func fieldsObject(fs models.Fields) object {
	obj := make(object, 0, len(fs))
	for _, f := range fs {
		obj = append(obj, member{f.Name, models.Scalar(f.Value)})
	}
	return obj
}

func writeObject(w *encode.LineWriter, depth int, obj object) {
	for _, m := range obj {
		writeMember(w, depth, m, false)
	}
}

// writeListItem puts the first member on the "- " line and the rest one
// level deeper.
func writeListItem(w *encode.LineWriter, depth int, obj object) {
	if len(obj) == 0 {
		w.Push(depth, "-")
		return
	}
	writeMember(w, depth, obj[0], true)
	writeObject(w, depth+1, obj[1:])
}

func writeMember(w *encode.LineWriter, depth int, m member, item bool) {
	push := w.Push
	child := depth + 1
	if item {
		push = w.PushListItem
		child = depth + 2
	}

	switch v := m.value.(type) {
	case object:
		push(depth, encode.EncodeKey(m.key)+":")
		writeObject(w, child, v)
	case list:
		push(depth, arrayHeader(m.key, len(v), nil))
		for _, obj := range v {
			writeListItem(w, child, obj)
		}
	case table:
		push(depth, arrayHeader(m.key, len(v.rows), v.fields))
		for _, row := range v.rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = encodePrimitive(c)
			}
			w.Push(child, strings.Join(cells, string(toonDelimiter)))
		}
	default:
		push(depth, encode.EncodeKey(m.key)+": "+encodePrimitive(v))
	}
}

func arrayHeader(key string, n int, fields []string) string {
	return encode.FormatHeader(n, encode.HeaderOptions{
		Key:       key,
		Fields:    fields,
		Delimiter: toonDelimiter,
	})
}

// encodePrimitive quotes strings that would otherwise read back as numbers,
// so text such as "007" stays text.
func encodePrimitive(v interface{}) string {
	if s, ok := v.(string); ok && shared.IsNumericLiteral(s) {
		return `"` + shared.EscapeString(s) + `"`
	}
	return encode.EncodePrimitive(v, toonDelimiter)
}
