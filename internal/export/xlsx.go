package export

import (
	"time"

	"humipay/internal/pkg/errs"
	"humipay/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName       = "Pedidos"
	fechaCellLayout = "02/01/2006 15:04"
)

var headers = []string{"Fecha", "Nombre", "Celular", "Dulce", "Salada", "MedioPago", "Monto", "Pagado", "Comentarios"}

var ErrWorkbookBuild = errs.New("failed to build workbook")

// BuildPedidosWorkbook renders a lote's pedidos into a spreadsheet, one row
// per pedido, newest first as given. Dates are formatted in loc so the file
// matches what the admin sees on screen.
func BuildPedidosWorkbook(pedidos []*queries.PedidoView, loc *time.Location) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errs.Mark(err, ErrWorkbookBuild)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, errs.Mark(err, ErrWorkbookBuild)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, errs.Mark(err, ErrWorkbookBuild)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "I1", headerStyle)
	}

	for i, p := range pedidos {
		row := i + 2
		values := []any{
			p.CreatedAt.In(loc).Format(fechaCellLayout),
			p.Nombre,
			p.Telefono,
			p.HumitaDulce,
			p.HumitaSalada,
			p.MedioPago,
			p.MontoEst.InexactFloat64(),
			pagadoLabel(p.Pagado),
			comentariosLabel(p.Comentarios),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, errs.Mark(err, ErrWorkbookBuild)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, errs.Mark(err, ErrWorkbookBuild)
			}
		}
	}

	// Widths tuned by eye against typical names and comments.
	_ = f.SetColWidth(sheetName, "A", "A", 18)
	_ = f.SetColWidth(sheetName, "B", "B", 24)
	_ = f.SetColWidth(sheetName, "C", "C", 14)
	_ = f.SetColWidth(sheetName, "F", "F", 12)
	_ = f.SetColWidth(sheetName, "I", "I", 32)

	return f, nil
}

func pagadoLabel(pagado bool) string {
	if pagado {
		return "Sí"
	}
	return "No"
}

func comentariosLabel(c *string) string {
	if c == nil || *c == "" {
		return "-"
	}
	return *c
}
