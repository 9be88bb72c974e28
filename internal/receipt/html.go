package receipt

import (
	"html/template"
	"strings"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Smart Africa - Payment Receipt</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; background: #f8f9fa; padding: 20px; }
.receipt { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
.header { background: #ea580c; color: #fff; padding: 30px; text-align: center; }
.content { padding: 30px; }
.row { display: flex; justify-content: space-between; margin-bottom: 12px; border-bottom: 1px solid #e9ecef; padding-bottom: 8px; }
.label { font-weight: 600; color: #495057; }
.total { font-size: 24px; font-weight: bold; color: #0066cc; text-align: center; padding: 20px; }
.footer { background: #f8f9fa; padding: 25px; text-align: center; color: #6c757d; }
</style>
</head>
<body>
<div class="receipt">
  <div class="header">
    <h1>Smart Africa</h1>
    <p>Payment Receipt</p>
  </div>
  <div class="content">
    <div class="row"><span class="label">Reference</span><span>{{.Reference}}</span></div>
    <div class="row"><span class="label">Transaction ID</span><span>{{.TransactionID}}</span></div>
    <div class="row"><span class="label">Customer</span><span>{{.CustomerName}}</span></div>
    <div class="row"><span class="label">Email</span><span>{{.Email}}</span></div>
    <div class="row"><span class="label">Phone</span><span>{{.Phone}}</span></div>
    {{if .Company}}<div class="row"><span class="label">Company</span><span>{{.Company}}</span></div>{{end}}
    <div class="row"><span class="label">Plan</span><span>{{.PlanName}}</span></div>
    <div class="row"><span class="label">Quantity</span><span>{{.Quantity}}</span></div>
    <div class="row"><span class="label">Paid At</span><span>{{.PaidAtDisplay}}</span></div>
    <div class="total">GHS {{printf "%.2f" .AmountMajor}}</div>
  </div>
  <div class="footer">
    <p>Thank you for choosing Smart Africa Digital Cards.</p>
  </div>
</div>
</body>
</html>
`))

// PaidAtDisplay formats the settlement time for the rendered receipt.
func (r *Receipt) PaidAtDisplay() string {
	if r.PaidAt.IsZero() {
		return ""
	}
	return r.PaidAt.Format("January 2, 2006 15:04")
}

// RenderHTML produces the printable/downloadable receipt document.
func (r *Receipt) RenderHTML() (string, error) {
	var b strings.Builder
	if err := receiptTemplate.Execute(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}
