package viewer

import "html/template"

var templates = template.Must(template.New("viewer").Parse(previewTemplates + modalTemplate))

const previewTemplates = `
{{define "icon-file"}}<svg class="{{.}}" width="64" height="64" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z"/></svg>{{end}}
{{define "icon-eye"}}<svg class="{{.}}" width="24" height="24" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M15 12a3 3 0 11-6 0 3 3 0 016 0z"/><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M2.458 12C3.732 7.943 7.523 5 12 5c4.478 0 8.268 2.943 9.542 7-1.274 4.057-5.064 7-9.542 7-4.477 0-8.268-2.943-9.542-7z"/></svg>{{end}}
{{define "icon-receipt"}}<svg class="{{.}}" width="16" height="16" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 14l6-6m-5.5.5h.01m4.99 5h.01M19 21V5a2 2 0 00-2-2H7a2 2 0 00-2 2v16l3.5-2 3.5 2 3.5-2 3.5 2z"/></svg>{{end}}

{{define "preview-inline_image"}}<div class="preview preview-inline-image flex items-center justify-center h-full bg-slate-900 p-4">
  <img src="{{.Source}}" alt="{{.Title}}" class="max-w-full max-h-full object-contain rounded-lg shadow-2xl">
</div>{{end}}

{{define "preview-inline_pdf"}}<div class="preview preview-inline-pdf w-full h-full">
  <iframe src="{{.Source}}" class="w-full h-full border-0" title="{{.Title}}"></iframe>
</div>{{end}}

{{define "preview-inline_blob"}}<div class="preview preview-inline-blob flex flex-col items-center justify-center h-full bg-slate-50 p-8">
  {{template "icon-file" "text-slate-400 mb-4"}}
  <h3 class="text-lg font-bold text-slate-700 mb-2">{{.Title}}</h3>
  <p class="text-sm text-slate-500 mb-6">{{.FileName}}</p>
  <div class="p-4 bg-indigo-50 rounded-lg border border-indigo-100 text-center">
    <p class="text-indigo-800 text-sm font-medium">Real file detected!</p>
    <p class="text-indigo-600 text-xs mt-1">This file type is being handled as a secure blob.</p>
  </div>
</div>{{end}}

{{define "preview-pdf_placeholder"}}<div class="preview preview-pdf-placeholder flex flex-col items-center justify-center h-full bg-slate-50 p-8">
  {{template "icon-file" "text-slate-400 mb-4"}}
  <h3 class="text-lg font-bold text-slate-700 mb-2">PDF Document</h3>
  <p class="text-sm text-slate-500 text-center max-w-md">{{.FileName}}</p>
  <div class="mt-6 bg-white rounded-lg p-6 border-2 border-slate-200 max-w-2xl w-full">
    <h4 class="font-semibold text-slate-800 mb-3">Document Preview:</h4>
    <div class="text-sm text-slate-600 space-y-2">
      <p class="font-semibold">{{.Title}}</p>
      <p class="text-xs text-slate-500">{{.Description}}</p>
      <div class="mt-4 p-4 bg-slate-50 rounded border border-slate-200 font-mono text-xs">
        <p>📄 {{.FileName}}</p>
        <p class="mt-2 text-slate-400">In a real application, the actual PDF content would be displayed here using a PDF viewer library.</p>
      </div>
    </div>
  </div>
</div>{{end}}

{{define "preview-imaging_placeholder"}}<div class="preview preview-imaging-placeholder flex flex-col items-center justify-center h-full bg-slate-900 p-8">
  <div class="bg-slate-800 rounded-lg p-8 max-w-3xl w-full">
    <div class="aspect-video bg-slate-700 rounded-lg flex items-center justify-center mb-4">
      {{template "icon-eye" "text-slate-500"}}
    </div>
    <div class="text-center">
      <h3 class="text-lg font-bold text-white mb-2">Medical Image / Scan</h3>
      <p class="text-sm text-slate-400">{{.FileName}}</p>
      <div class="mt-4 text-xs text-slate-500">
        <p>In a real application, DICOM images would be displayed using a medical imaging viewer.</p>
      </div>
    </div>
  </div>
</div>{{end}}

{{define "preview-lab_report"}}<div class="preview preview-lab-report flex flex-col items-center justify-center h-full bg-gradient-to-br from-blue-50 to-indigo-50 p-8">
  <div class="bg-white rounded-xl shadow-lg p-8 max-w-2xl w-full border border-blue-200">
    <div class="flex items-center gap-3 mb-6 pb-4 border-b border-slate-200">
      <div class="p-3 bg-blue-100 rounded-lg">{{template "icon-file" "text-blue-600"}}</div>
      <div>
        <h3 class="text-xl font-bold text-slate-800">Laboratory Report</h3>
        <p class="text-sm text-slate-500">{{.FileName}}</p>
      </div>
    </div>
    <div class="space-y-4">
      <div>
        <h4 class="font-semibold text-slate-700 mb-2">Test Name:</h4>
        <p class="text-slate-600">{{.Title}}</p>
      </div>
      <div>
        <h4 class="font-semibold text-slate-700 mb-2">Results:</h4>
        <p class="text-sm text-slate-600">{{.Description}}</p>
      </div>
      <div class="mt-6 p-4 bg-slate-50 rounded-lg border border-slate-200">
        <p class="text-xs text-slate-500 italic">🔬 Detailed test results would appear here in a real application. This includes reference ranges, values, and interpretations.</p>
      </div>
    </div>
  </div>
</div>{{end}}

{{define "preview-generic"}}<div class="preview preview-generic flex flex-col items-center justify-center h-full bg-slate-50 p-8">
  {{template "icon-file" "text-slate-400 mb-4"}}
  <h3 class="text-lg font-bold text-slate-700 mb-2">{{.Title}}</h3>
  <p class="text-sm text-slate-500">{{.FileName}}</p>
</div>{{end}}
`

const modalTemplate = `
{{define "modal"}}<div class="file-viewer-modal fixed inset-0 bg-black/70 z-50 flex items-center justify-center p-4 backdrop-blur-sm" role="dialog" aria-modal="true" data-preview-kind="{{.Kind}}">
  <div class="bg-white rounded-2xl shadow-2xl w-full max-w-5xl max-h-[90vh] flex flex-col overflow-hidden">
    <div class="modal-header bg-slate-900 text-white px-6 py-4 flex justify-between items-center">
      <div class="flex items-center gap-3">
        {{template "icon-eye" ""}}
        <div>
          <h2 class="font-bold text-lg">File Viewer</h2>
          <p class="text-sm text-slate-300">{{.FileType}} Document</p>
        </div>
      </div>
      <div class="flex items-center gap-2">
        {{if .BillFileName}}<div class="bill-badge flex items-center gap-2 bg-emerald-900/50 px-3 py-1.5 rounded text-sm">
          {{template "icon-receipt" "text-emerald-300"}}
          <span class="text-emerald-100">Bill: {{.BillFileName}}</span>
        </div>{{end}}
        {{if .CloseURL}}<form method="post" action="{{.CloseURL}}">{{end}}<button type="{{if .CloseURL}}submit{{else}}button{{end}}" data-action="close" class="p-2 hover:bg-slate-800 rounded-lg transition-colors" aria-label="Close">&times;</button>{{if .CloseURL}}</form>{{end}}
      </div>
    </div>
    <div class="modal-body flex-1 overflow-y-auto">
      {{.Body}}
    </div>
    <div class="modal-footer bg-slate-100 px-6 py-4 flex justify-between items-center border-t border-slate-200">
      <div class="text-sm text-slate-600">
        <span class="font-medium">File: </span>
        <span class="font-mono">{{.FileName}}</span>
      </div>
      <div class="flex gap-3">
        {{range .Actions}}{{if .URL}}<form method="post" action="{{.URL}}">{{end}}<button type="{{if .URL}}submit{{else}}button{{end}}" data-action="{{.Name}}" class="{{.Class}} text-white px-4 py-2 rounded-lg transition-colors font-medium">{{.Label}}</button>{{if .URL}}</form>{{end}}
        {{end}}
      </div>
    </div>
  </div>
</div>{{end}}
`
