package render

// The five invoice style variants. Layout and typography differ; the computed
// fields are identical. Each document is self-contained apart from the linked
// web fonts.

const invoiceClassicTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Invoice {{.Number}}</title>
<link href="https://fonts.googleapis.com/css2?family=Playfair+Display:wght@600;700&family=Lora:wght@400;500&display=swap" rel="stylesheet">
<style>
  body { font-family: 'Lora', serif; color: {{.Theme.Text}}; background: {{.Theme.Background}}; margin: 0; padding: 40px; }
  .sheet { max-width: 720px; margin: 0 auto; }
  header { text-align: center; border-bottom: 3px double {{.Theme.Primary}}; padding-bottom: 24px; }
  header img { max-height: 72px; margin-bottom: 12px; }
  h1 { font-family: 'Playfair Display', serif; font-size: 28px; color: {{.Theme.Primary}}; margin: 0; }
  .tagline { font-style: italic; margin: 4px 0 0; }
  .doc-title { text-align: center; font-family: 'Playfair Display', serif; letter-spacing: 4px; color: {{.Theme.Accent}}; margin: 28px 0 6px; }
  .meta, .bill-to { margin: 18px 0; line-height: 1.6; }
  .meta span { display: inline-block; min-width: 130px; font-weight: 500; }
  table { width: 100%; border-collapse: collapse; margin: 24px 0; }
  th { border-top: 1px solid {{.Theme.Primary}}; border-bottom: 1px solid {{.Theme.Primary}}; padding: 10px 8px; text-align: left; }
  td { border-bottom: 1px solid #ddd; padding: 10px 8px; }
  td.qty, th.qty { text-align: right; width: 120px; }
  .totals { margin-left: auto; width: 280px; line-height: 2; }
  .totals div { display: flex; justify-content: space-between; }
  .totals .balance { border-top: 2px solid {{.Theme.Primary}}; font-weight: 700; color: {{.Theme.Accent}}; }
  .bank { margin-top: 32px; padding: 16px; border: 1px solid #ddd; }
  footer { text-align: center; margin-top: 40px; font-size: 13px; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
<div class="sheet">
  <header>
    {{if .Logo}}<img src="{{.Logo}}" alt="logo">{{end}}
    <h1>{{.Branding.BusinessName}}</h1>
    {{if .Branding.Tagline}}<p class="tagline">{{.Branding.Tagline}}</p>{{end}}
    <p>{{.Branding.Address}} &middot; {{.Branding.Phone}} &middot; {{.Branding.Email}}</p>
  </header>
  <h2 class="doc-title">INVOICE</h2>
  <div class="meta">
    <p><span>Invoice No:</span> {{.Number}}</p>
    <p><span>Invoice Date:</span> {{.InvoiceDate}}</p>
    <p><span>Event Date:</span> {{.EventDate}}</p>
    <p><span>Event Location:</span> {{.EventLocation}}</p>
  </div>
  <div class="bill-to">
    <strong>Billed To</strong><br>
    {{.CustomerName}}<br>
    {{.PhoneNumber}}
  </div>
  <table>
    <thead><tr><th>Description</th><th class="qty">Qty</th></tr></thead>
    <tbody>
    {{range .Items}}<tr><td>{{.Description}}</td><td class="qty">{{.Quantity}}</td></tr>
    {{end}}</tbody>
  </table>
  <div class="totals">
    <div><span>Total</span><span>{{.Total}}</span></div>
    <div><span>Advance Paid</span><span>{{.Advance}}</span></div>
    <div class="balance"><span>Balance Due</span><span>{{.Balance}}</span></div>
  </div>
  {{if .Branding.BankName}}
  <div class="bank">
    <strong>Payment Details</strong><br>
    {{.Branding.BankName}} &middot; {{.Branding.AccountName}} &middot; {{.Branding.AccountNo}}
  </div>
  {{end}}
  <footer>{{.Branding.FooterNote}}</footer>
</div>
</body>
</html>
`

const invoiceModernTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Invoice {{.Number}}</title>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&display=swap" rel="stylesheet">
<style>
  body { font-family: 'Inter', sans-serif; color: {{.Theme.Text}}; background: {{.Theme.Background}}; margin: 0; }
  .band { background: {{.Theme.Primary}}; color: #fff; padding: 32px 48px; display: flex; justify-content: space-between; align-items: center; }
  .band img { max-height: 56px; }
  .band h1 { font-size: 22px; font-weight: 800; margin: 0; }
  .band .num { font-size: 14px; opacity: .85; }
  .sheet { max-width: 760px; margin: 0 auto; padding: 32px 48px; }
  .cols { display: flex; justify-content: space-between; gap: 24px; margin-bottom: 28px; }
  .label { font-size: 11px; text-transform: uppercase; letter-spacing: 1px; color: {{.Theme.Accent}}; font-weight: 600; }
  table { width: 100%; border-collapse: collapse; }
  th { background: {{.Theme.Primary}}; color: #fff; padding: 10px 12px; text-align: left; font-size: 13px; }
  td { padding: 10px 12px; border-bottom: 1px solid #eee; }
  td.qty, th.qty { text-align: right; width: 110px; }
  .totals { margin: 24px 0 0 auto; width: 300px; background: #f7f7f8; border-radius: 8px; padding: 16px 20px; line-height: 2; }
  .totals div { display: flex; justify-content: space-between; }
  .totals .balance { font-weight: 800; color: {{.Theme.Primary}}; font-size: 17px; }
  .bank { margin-top: 28px; font-size: 13px; }
  footer { padding: 24px 48px; font-size: 12px; color: #888; }
  @media print { .band { -webkit-print-color-adjust: exact; } }
</style>
</head>
<body>
<div class="band">
  <div>
    {{if .Logo}}<img src="{{.Logo}}" alt="logo">{{end}}
    <h1>{{.Branding.BusinessName}}</h1>
  </div>
  <div class="num">INVOICE<br><strong>#{{.Number}}</strong></div>
</div>
<div class="sheet">
  <div class="cols">
    <div>
      <div class="label">Billed To</div>
      {{.CustomerName}}<br>{{.PhoneNumber}}
    </div>
    <div>
      <div class="label">Invoice Date</div>
      {{.InvoiceDate}}
    </div>
    <div>
      <div class="label">Event</div>
      {{.EventDate}}<br>{{.EventLocation}}
    </div>
  </div>
  <table>
    <thead><tr><th>Description</th><th class="qty">Qty</th></tr></thead>
    <tbody>
    {{range .Items}}<tr><td>{{.Description}}</td><td class="qty">{{.Quantity}}</td></tr>
    {{end}}</tbody>
  </table>
  <div class="totals">
    <div><span>Total</span><span>{{.Total}}</span></div>
    <div><span>Advance Paid</span><span>{{.Advance}}</span></div>
    <div class="balance"><span>Balance Due</span><span>{{.Balance}}</span></div>
  </div>
  {{if .Branding.BankName}}
  <div class="bank">
    <span class="label">Payment Details</span><br>
    {{.Branding.BankName}} &middot; {{.Branding.AccountName}} &middot; {{.Branding.AccountNo}}
  </div>
  {{end}}
</div>
<footer>{{.Branding.FooterNote}} &mdash; {{.Branding.Email}}</footer>
</body>
</html>
`

const invoiceMinimalTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Invoice {{.Number}}</title>
<link href="https://fonts.googleapis.com/css2?family=Work+Sans:wght@300;400;600&display=swap" rel="stylesheet">
<style>
  body { font-family: 'Work Sans', sans-serif; font-weight: 300; color: {{.Theme.Text}}; background: {{.Theme.Background}}; margin: 0; padding: 64px; }
  .sheet { max-width: 640px; margin: 0 auto; }
  .row { display: flex; justify-content: space-between; align-items: baseline; }
  h1 { font-weight: 600; font-size: 16px; letter-spacing: 3px; text-transform: uppercase; margin: 0; }
  .num { color: {{.Theme.Accent}}; }
  hr { border: 0; border-top: 1px solid {{.Theme.Text}}; opacity: .2; margin: 28px 0; }
  .label { font-size: 10px; letter-spacing: 2px; text-transform: uppercase; opacity: .55; margin-bottom: 4px; }
  .meta { display: flex; gap: 48px; }
  table { width: 100%; border-collapse: collapse; margin: 8px 0; }
  td { padding: 12px 0; border-bottom: 1px solid rgba(0,0,0,.08); }
  td.qty { text-align: right; width: 100px; }
  .totals { margin-top: 24px; line-height: 2.2; }
  .totals div { display: flex; justify-content: space-between; }
  .totals .balance { font-weight: 600; }
  footer { margin-top: 56px; font-size: 11px; opacity: .6; }
</style>
</head>
<body>
<div class="sheet">
  <div class="row">
    <h1>{{.Branding.BusinessName}}</h1>
    <span class="num">No. {{.Number}}</span>
  </div>
  <hr>
  <div class="meta">
    <div><div class="label">Billed To</div>{{.CustomerName}}<br>{{.PhoneNumber}}</div>
    <div><div class="label">Invoice Date</div>{{.InvoiceDate}}</div>
    <div><div class="label">Event</div>{{.EventDate}}<br>{{.EventLocation}}</div>
  </div>
  <hr>
  <table>
    <tbody>
    {{range .Items}}<tr><td>{{.Description}}</td><td class="qty">{{.Quantity}}</td></tr>
    {{end}}</tbody>
  </table>
  <div class="totals">
    <div><span>Total</span><span>{{.Total}}</span></div>
    <div><span>Advance Paid</span><span>{{.Advance}}</span></div>
    <div class="balance"><span>Balance Due</span><span>{{.Balance}}</span></div>
  </div>
  {{if .Branding.BankName}}
  <hr>
  <div><div class="label">Payment</div>{{.Branding.BankName}} / {{.Branding.AccountName}} / {{.Branding.AccountNo}}</div>
  {{end}}
  <footer>{{.Branding.Address}} &middot; {{.Branding.Phone}} &middot; {{.Branding.Email}}<br>{{.Branding.FooterNote}}</footer>
</div>
</body>
</html>
`

const invoiceElegantTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Invoice {{.Number}}</title>
<link href="https://fonts.googleapis.com/css2?family=Cormorant+Garamond:wght@400;500;600&display=swap" rel="stylesheet">
<style>
  body { font-family: 'Cormorant Garamond', serif; font-size: 17px; color: {{.Theme.Text}}; background: {{.Theme.Background}}; margin: 0; padding: 48px; }
  .frame { max-width: 680px; margin: 0 auto; border: 1px solid {{.Theme.Accent}}; padding: 48px; }
  header { text-align: center; }
  header img { max-height: 64px; }
  h1 { font-weight: 500; font-size: 30px; letter-spacing: 5px; text-transform: uppercase; margin: 8px 0 0; color: {{.Theme.Primary}}; }
  .rule { width: 80px; border-top: 1px solid {{.Theme.Accent}}; margin: 18px auto; }
  .doc { text-align: center; letter-spacing: 8px; font-size: 14px; color: {{.Theme.Accent}}; }
  .meta { display: flex; justify-content: space-between; margin: 32px 0; }
  .label { font-size: 11px; letter-spacing: 2px; text-transform: uppercase; color: {{.Theme.Accent}}; }
  table { width: 100%; border-collapse: collapse; margin: 16px 0; }
  th { font-weight: 500; letter-spacing: 2px; text-transform: uppercase; font-size: 12px; border-bottom: 1px solid {{.Theme.Accent}}; padding: 8px 4px; text-align: left; }
  td { padding: 10px 4px; border-bottom: 1px dotted rgba(0,0,0,.2); }
  td.qty, th.qty { text-align: right; width: 110px; }
  .totals { margin: 24px 0 0 auto; width: 280px; line-height: 2; }
  .totals div { display: flex; justify-content: space-between; }
  .totals .balance { border-top: 1px solid {{.Theme.Accent}}; font-weight: 600; }
  footer { text-align: center; margin-top: 40px; font-size: 14px; font-style: italic; }
</style>
</head>
<body>
<div class="frame">
  <header>
    {{if .Logo}}<img src="{{.Logo}}" alt="logo">{{end}}
    <h1>{{.Branding.BusinessName}}</h1>
    <div class="rule"></div>
    <div class="doc">INVOICE &middot; {{.Number}}</div>
  </header>
  <div class="meta">
    <div><span class="label">Billed To</span><br>{{.CustomerName}}<br>{{.PhoneNumber}}</div>
    <div><span class="label">Invoice Date</span><br>{{.InvoiceDate}}</div>
    <div><span class="label">Event</span><br>{{.EventDate}}<br>{{.EventLocation}}</div>
  </div>
  <table>
    <thead><tr><th>Description</th><th class="qty">Qty</th></tr></thead>
    <tbody>
    {{range .Items}}<tr><td>{{.Description}}</td><td class="qty">{{.Quantity}}</td></tr>
    {{end}}</tbody>
  </table>
  <div class="totals">
    <div><span>Total</span><span>{{.Total}}</span></div>
    <div><span>Advance Paid</span><span>{{.Advance}}</span></div>
    <div class="balance"><span>Balance Due</span><span>{{.Balance}}</span></div>
  </div>
  {{if .Branding.BankName}}
  <p><span class="label">Payment</span><br>{{.Branding.BankName}} &middot; {{.Branding.AccountName}} &middot; {{.Branding.AccountNo}}</p>
  {{end}}
  <footer>{{.Branding.FooterNote}}</footer>
</div>
</body>
</html>
`

const invoiceBoldTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Invoice {{.Number}}</title>
<link href="https://fonts.googleapis.com/css2?family=Archivo:wght@500;700;900&display=swap" rel="stylesheet">
<style>
  body { font-family: 'Archivo', sans-serif; color: {{.Theme.Text}}; background: {{.Theme.Background}}; margin: 0; }
  .hero { background: {{.Theme.Primary}}; color: #fff; padding: 48px; }
  .hero h1 { font-size: 34px; font-weight: 900; text-transform: uppercase; margin: 0; }
  .hero .num { display: inline-block; background: {{.Theme.Accent}}; color: #fff; padding: 6px 16px; margin-top: 12px; font-weight: 700; }
  .hero img { max-height: 56px; float: right; }
  .sheet { max-width: 760px; margin: 0 auto; padding: 40px 48px; }
  .grid { display: flex; gap: 32px; margin-bottom: 32px; }
  .tag { font-size: 11px; font-weight: 700; text-transform: uppercase; letter-spacing: 1px; color: {{.Theme.Accent}}; }
  table { width: 100%; border-collapse: collapse; }
  th { border-bottom: 4px solid {{.Theme.Primary}}; text-align: left; padding: 10px 8px; text-transform: uppercase; font-size: 12px; }
  td { padding: 12px 8px; border-bottom: 2px solid #eee; font-weight: 500; }
  td.qty, th.qty { text-align: right; width: 110px; }
  .totals { margin: 28px 0 0 auto; width: 320px; }
  .totals div { display: flex; justify-content: space-between; padding: 8px 12px; }
  .totals .balance { background: {{.Theme.Primary}}; color: #fff; font-weight: 900; font-size: 18px; }
  .bank { margin-top: 32px; border-left: 6px solid {{.Theme.Accent}}; padding-left: 16px; }
  footer { padding: 24px 48px; font-weight: 500; font-size: 12px; }
  @media print { .hero, .totals .balance { -webkit-print-color-adjust: exact; } }
</style>
</head>
<body>
<div class="hero">
  {{if .Logo}}<img src="{{.Logo}}" alt="logo">{{end}}
  <h1>{{.Branding.BusinessName}}</h1>
  <span class="num">INVOICE #{{.Number}}</span>
</div>
<div class="sheet">
  <div class="grid">
    <div><div class="tag">Billed To</div>{{.CustomerName}}<br>{{.PhoneNumber}}</div>
    <div><div class="tag">Invoice Date</div>{{.InvoiceDate}}</div>
    <div><div class="tag">Event</div>{{.EventDate}}<br>{{.EventLocation}}</div>
  </div>
  <table>
    <thead><tr><th>Description</th><th class="qty">Qty</th></tr></thead>
    <tbody>
    {{range .Items}}<tr><td>{{.Description}}</td><td class="qty">{{.Quantity}}</td></tr>
    {{end}}</tbody>
  </table>
  <div class="totals">
    <div><span>Total</span><span>{{.Total}}</span></div>
    <div><span>Advance Paid</span><span>{{.Advance}}</span></div>
    <div class="balance"><span>Balance Due</span><span>{{.Balance}}</span></div>
  </div>
  {{if .Branding.BankName}}
  <div class="bank">
    <div class="tag">Payment Details</div>
    {{.Branding.BankName}} &middot; {{.Branding.AccountName}} &middot; {{.Branding.AccountNo}}
  </div>
  {{end}}
</div>
<footer>{{.Branding.FooterNote}}</footer>
</body>
</html>
`

const monthlyReportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.MonthName}} {{.Year}} Report</title>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;800&display=swap" rel="stylesheet">
<style>
  body { font-family: 'Inter', sans-serif; color: #1f2937; margin: 0; padding: 40px; }
  .sheet { max-width: 820px; margin: 0 auto; }
  header { display: flex; justify-content: space-between; align-items: center; border-bottom: 2px solid #1f2937; padding-bottom: 16px; }
  header img { max-height: 56px; }
  h1 { font-size: 20px; font-weight: 800; margin: 0; }
  .period { font-size: 15px; color: #6b7280; }
  .cards { display: flex; gap: 16px; margin: 28px 0; }
  .card { flex: 1; border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; }
  .card .tag { font-size: 11px; text-transform: uppercase; letter-spacing: 1px; color: #6b7280; }
  .card .value { font-size: 22px; font-weight: 800; margin-top: 6px; }
  .card .value.profit { color: #047857; }
  .card .value.loss { color: #b91c1c; }
  h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 1px; margin: 32px 0 8px; }
  table { width: 100%; border-collapse: collapse; }
  th { background: #f3f4f6; text-align: left; padding: 8px 10px; font-size: 12px; }
  td { padding: 8px 10px; border-bottom: 1px solid #f0f0f0; font-size: 14px; }
  td.money { text-align: right; }
  .summary { margin-top: 24px; width: 360px; margin-left: auto; line-height: 2; }
  .summary div { display: flex; justify-content: space-between; }
  .summary .net { border-top: 2px solid #1f2937; font-weight: 800; }
  footer { margin-top: 40px; font-size: 12px; color: #9ca3af; text-align: center; }
</style>
</head>
<body>
<div class="sheet">
  <header>
    <div>
      <h1>{{.Branding.BusinessName}}</h1>
      <div class="period">Monthly Report &mdash; {{.MonthName}} {{.Year}}</div>
    </div>
    {{if .Logo}}<img src="{{.Logo}}" alt="logo">{{end}}
  </header>

  <div class="cards">
    <div class="card"><div class="tag">Shoots</div><div class="value">{{.ShootCount}}</div></div>
    <div class="card"><div class="tag">Revenue</div><div class="value">{{.ShootTotal}}</div></div>
    <div class="card"><div class="tag">Avg / Shoot</div><div class="value">{{.ShootAverage}}</div></div>
    <div class="card"><div class="tag">Net Profit</div><div class="value {{if ge .NetProfitValue 0.0}}profit{{else}}loss{{end}}">{{.NetProfit}}</div></div>
  </div>

  <h2>Shoots</h2>
  <table>
    <thead><tr><th>Date</th><th>Client</th><th>Type</th><th>Location</th><th style="text-align:right">Price</th></tr></thead>
    <tbody>
    {{range .Rows}}<tr><td>{{.Date}}</td><td>{{.Client}}</td><td>{{.Type}}</td><td>{{.Location}}</td><td class="money">{{.Price}}</td></tr>
    {{else}}<tr><td colspan="5">No shoots recorded this month.</td></tr>
    {{end}}</tbody>
  </table>

  <h2>Invoices</h2>
  <div class="summary">
    <div><span>Invoices Issued</span><span>{{.InvoiceCount}}</span></div>
    <div><span>Invoiced</span><span>{{.InvoicedTotal}}</span></div>
    <div><span>Advances Received</span><span>{{.AdvancedTotal}}</span></div>
    <div><span>Outstanding Balance</span><span>{{.BalanceTotal}}</span></div>
  </div>

  <h2>Profit &amp; Loss</h2>
  <div class="summary">
    <div><span>Shoot Revenue</span><span>{{.ShootTotal}}</span></div>
    <div><span>Expenses</span><span>{{.ExpensesTotal}}</span></div>
    <div class="net"><span>Net Profit</span><span>{{.NetProfit}}</span></div>
  </div>

  <footer>{{.Branding.BusinessName}} &middot; {{.Branding.Phone}} &middot; {{.Branding.Email}}</footer>
</div>
</body>
</html>
`
