package mail

// bodyTemplate plantilla HTML del correo de alerta. Consume los campos del
// reporte tal como los expone el DTO.
const bodyTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #00467f;">{{.CompanyName}} — Low Stock Alert Report</h2>
  <p>Generated at {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>

  <table cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
    <tr>
      <td><strong>Total products</strong></td><td>{{.TotalProducts}}</td>
    </tr>
    <tr>
      <td><strong>Products in alert</strong></td><td>{{.LowStockCount}}</td>
    </tr>
    <tr>
      <td><strong>Out of stock</strong></td><td>{{.CriticalItemsCount}}</td>
    </tr>
    {{if .TotalInventoryValue}}
    <tr>
      <td><strong>Total inventory value</strong></td><td>${{.TotalInventoryValue.StringFixed 2}}</td>
    </tr>
    {{end}}
    <tr>
      <td><strong>Average stock level</strong></td><td>{{.ReportSummary.AvgStockLevel.StringFixed 2}}%</td>
    </tr>
    <tr>
      <td><strong>Items below 50%</strong></td><td>{{.ReportSummary.ItemsBelow50Pct}}</td>
    </tr>
  </table>

  <h3>The following products are at or below their minimum stock threshold:</h3>
  <table cellpadding="6" cellspacing="0" border="1" style="border-collapse: collapse; border-color: #ddd;">
    <tr style="background: #00467f; color: #fff;">
      <th align="left">Product</th>
      <th align="right">Current stock</th>
      <th align="right">Minimum</th>
      <th align="right">Stock level</th>
    </tr>
    {{range .LowStockItems}}
    <tr>
      <td>{{.Name}}</td>
      <td align="right">{{.CurrentStock}}</td>
      <td align="right">{{.MinThreshold}}</td>
      <td align="right">{{.StockLevelPct.StringFixed 2}}%</td>
    </tr>
    {{end}}
  </table>

  {{if .CriticalItems}}
  <h3 style="color: #b22222;">Out of stock — urgent restock needed:</h3>
  <ul>
    {{range .CriticalItems}}
    <li>{{.Name}} ({{.CurrentStock}} units)</li>
    {{end}}
  </ul>
  {{end}}

  <p>Please find attached the detailed report.</p>
  <p style="color: #888; font-size: 12px;">
    Note: this report has been sent to all admins and stock managers.
  </p>
</body>
</html>`
