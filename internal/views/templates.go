package views

// Pages share one template set; "list" and "form" are the entry points.
const pageTemplates = `
{{define "header"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.}} · Insurance Policies</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; color: #333; background: #f8f9fa; margin: 0; }
  nav { background: #1f3a68; padding: 12px 24px; }
  nav a { color: #fff; margin-right: 18px; text-decoration: none; font-weight: 600; }
  main { max-width: 1100px; margin: 24px auto; background: #fff; border: 1px solid #e9ecef; border-radius: 8px; padding: 24px; }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: 8px; border-bottom: 1px solid #e9ecef; }
  .badge { padding: 2px 8px; border-radius: 10px; font-size: 12px; color: #fff; }
  .badge-success { background: #28a745; }
  .badge-danger { background: #dc3545; }
  .alert { padding: 10px 14px; border-radius: 6px; margin-bottom: 16px; }
  .alert-success { background: #d4edda; color: #155724; }
  .alert-danger { background: #f8d7da; color: #721c24; }
  .field { margin-bottom: 14px; }
  .field label { display: block; font-weight: 600; margin-bottom: 4px; }
  .field input, .field select { width: 100%; padding: 6px; box-sizing: border-box; }
  .invalid { color: #dc3545; font-size: 13px; }
  .actions form { display: inline; }
</style>
</head>
<body>
<nav><a href="/view">View Insurances</a><a href="/add">Add Insurance</a></nav>
<main>
{{end}}

{{define "footer"}}</main>
</body>
</html>
{{end}}

{{define "list"}}{{template "header" "Insurances"}}
<h1>Insurance Policies</h1>
{{if .DeleteMessage}}<div class="alert alert-success" id="delete-notice">{{.DeleteMessage}}</div>
<script>setTimeout(function () { var n = document.getElementById("delete-notice"); if (n) { n.remove(); } }, {{.DeleteNoticeMS}});</script>{{end}}
{{if .ErrorMessage}}<div class="alert alert-danger">{{.ErrorMessage}}</div>{{end}}
{{if .Policies}}
<table>
  <thead>
    <tr><th>Policy No.</th><th>Holder</th><th>Date of Birth</th><th>Type</th><th>Premium</th><th>Start</th><th>End</th><th>Nominee</th><th>Status</th><th></th></tr>
  </thead>
  <tbody>
  {{range .Policies}}
    <tr>
      <td>{{.PolicyNumber}}</td>
      <td>{{.HolderName}}</td>
      <td>{{formatDate .DateOfBirth}}</td>
      <td>{{.PolicyType}}</td>
      <td>{{formatPremium .Premium}}</td>
      <td>{{formatDate .StartDate}}</td>
      <td>{{formatDate .EndDate}}</td>
      <td>{{.Nominee}}</td>
      <td><span class="badge {{statusBadgeClass .Status}}">{{.Status}}</span></td>
      <td class="actions">
        <a href="/update/{{.ID}}">Edit</a>
        <form method="post" action="/delete/{{.ID}}" onsubmit="return confirm('Are you sure you want to delete this insurance?');">
          <button type="submit">Delete</button>
        </form>
      </td>
    </tr>
  {{end}}
  </tbody>
</table>
{{else}}{{if not .ErrorMessage}}<p>No insurance policies found. <a href="/add">Add one</a>.</p>{{end}}{{end}}
{{template "footer"}}{{end}}

{{define "form"}}{{template "header" .Title}}
<h1>{{.Title}}</h1>
{{if .SuccessMessage}}<div class="alert alert-success">{{.SuccessMessage}}</div>{{end}}
{{if .ErrorMessage}}<div class="alert alert-danger">{{.ErrorMessage}}</div>{{end}}
{{if .RedirectTo}}<script>setTimeout(function () { window.location.href = {{.RedirectTo}}; }, {{redirectMS .RedirectAfter}});</script>
<noscript><a href="{{.RedirectTo}}">Continue</a></noscript>{{end}}
{{if .Loaded}}
<form method="post" action="{{.Action}}" novalidate>
  <div class="field">
    <label for="holderName">Holder Name</label>
    <input id="holderName" name="holderName" value="{{.Form.HolderName}}">
    {{with fieldError .FieldErrors "holderName"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <div class="field">
    <label for="dateOfBirth">Date of Birth</label>
    <input id="dateOfBirth" name="dateOfBirth" type="date" value="{{.Form.DateOfBirth}}">
    {{with fieldError .FieldErrors "dateOfBirth"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <div class="field">
    <label for="policyType">Policy Type</label>
    <select id="policyType" name="policyType">
      <option value="">Select type</option>
      {{range .PolicyTypes}}<option value="{{.}}"{{if eq (print .) $.Form.PolicyType}} selected{{end}}>{{.}}</option>{{end}}
    </select>
    {{with fieldError .FieldErrors "policyType"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <div class="field">
    <label for="premium">Premium</label>
    <input id="premium" name="premium" type="number" step="0.01" min="0.01" value="{{.Form.Premium}}">
    {{with fieldError .FieldErrors "premium"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <div class="field">
    <label for="startDate">Start Date</label>
    <input id="startDate" name="startDate" type="date" value="{{.Form.StartDate}}">
    {{with fieldError .FieldErrors "startDate"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <div class="field">
    <label for="endDate">End Date</label>
    <input id="endDate" name="endDate" type="date" value="{{.Form.EndDate}}">
    {{with fieldError .FieldErrors "endDate"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <div class="field">
    <label for="nominee">Nominee</label>
    <input id="nominee" name="nominee" value="{{.Form.Nominee}}">
    {{with fieldError .FieldErrors "nominee"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <div class="field">
    <label for="status">Status</label>
    <select id="status" name="status">
      {{range .StatusOptions}}<option value="{{.}}"{{if eq (print .) $.Form.Status}} selected{{end}}>{{.}}</option>{{end}}
    </select>
    {{with fieldError .FieldErrors "status"}}<div class="invalid">{{.}}</div>{{end}}
  </div>
  <button type="submit">{{.SubmitLabel}}</button>
  {{if .IsEdit}}<a href="/view">Cancel</a>{{else}}<button type="reset">Reset</button>{{end}}
</form>
{{end}}
{{template "footer"}}{{end}}
`
