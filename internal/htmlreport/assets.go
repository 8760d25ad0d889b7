package htmlreport

const (
	styleTag  = "<style>" + pageStyle + "</style>"
	scriptTag = "<script>" + pageScript + "</script>"
)

const pageStyle = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #eef1f6; color: #333; padding: 20px; line-height: 1.5; }
.container { max-width: 1200px; margin: 0 auto; background: #fff; border-radius: 12px; box-shadow: 0 10px 40px rgba(0,0,0,0.15); overflow: hidden; }
header { background: #3f51b5; color: #fff; padding: 32px; text-align: center; }
header h1 { font-size: 2em; margin-bottom: 8px; }
header .meta { opacity: 0.85; font-size: 0.9em; }
.summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 16px; padding: 24px 32px; }
.stat-card { background: #f7f8fb; border-radius: 8px; padding: 16px; text-align: center; border-top: 4px solid #9aa5b1; }
.stat-card[data-kind="passed"] { border-top-color: #28a745; }
.stat-card[data-kind="failed"] { border-top-color: #dc3545; }
.stat-card[data-kind="skipped"] { border-top-color: #ffc107; }
.stat-card .number { font-size: 2em; font-weight: 700; }
.stat-card .label { color: #666; font-size: 0.85em; text-transform: uppercase; }
.pass-rate { margin: 0 32px 24px; padding: 20px; border-radius: 8px; background: #f7f8fb; border-left: 6px solid #9aa5b1; }
.pass-rate[data-tier="healthy"] { border-left-color: #28a745; }
.pass-rate[data-tier="warning"] { border-left-color: #ffc107; }
.pass-rate[data-tier="critical"] { border-left-color: #dc3545; }
.progress-bar { height: 28px; background: #e1e4ea; border-radius: 14px; overflow: hidden; margin-top: 10px; }
.progress-fill { height: 100%; color: #fff; font-weight: 700; text-align: center; line-height: 28px; min-width: 3em; }
[data-tier="healthy"] .progress-fill { background: linear-gradient(90deg, #28a745, #4caf50); }
[data-tier="warning"] .progress-fill { background: linear-gradient(90deg, #ffc107, #ffd54f); color: #333; }
[data-tier="critical"] .progress-fill { background: linear-gradient(90deg, #dc3545, #f44336); }
.scenarios { padding: 0 32px 32px; }
.scenarios h2 { margin-bottom: 12px; }
.filter-buttons { margin-bottom: 16px; }
.filter-btn { border: 1px solid #3f51b5; background: #fff; color: #3f51b5; padding: 8px 16px; border-radius: 20px; cursor: pointer; margin-right: 8px; }
.filter-btn.active { background: #3f51b5; color: #fff; }
.scenario-card { border: 1px solid #e1e4ea; border-left: 5px solid #28a745; border-radius: 8px; padding: 16px; margin-bottom: 12px; }
.scenario-card[data-status="failed"] { border-left-color: #dc3545; }
.scenario-header { display: flex; justify-content: space-between; gap: 12px; }
.scenario-name { font-weight: 600; }
.scenario-status { font-weight: 700; font-size: 0.85em; }
.scenario-status[data-status="passed"] { color: #28a745; }
.scenario-status[data-status="failed"] { color: #dc3545; }
.scenario-meta { color: #666; font-size: 0.85em; margin: 6px 0 10px; }
.tag { background: #e8eaf6; color: #3f51b5; border-radius: 10px; padding: 1px 8px; margin-right: 4px; }
.steps-list { list-style: none; }
.step { padding: 4px 8px; border-radius: 4px; margin-bottom: 2px; font-size: 0.9em; }
.step[data-status="passed"] { background: #eaf7ee; }
.step[data-status="failed"] { background: #fdecee; }
.step[data-status="skipped"], .step[data-status="unknown"] { background: #fff8e1; }
.step-icon, .step-keyword { font-weight: 700; margin-right: 6px; }
.step-status { float: right; color: #666; font-size: 0.85em; }
.error-message { margin-top: 10px; background: #2d2d2d; color: #f8d7da; padding: 12px; border-radius: 6px; white-space: pre-wrap; word-break: break-word; font-family: monospace; font-size: 0.85em; }
.screenshot { margin-top: 10px; max-width: 100%; border: 1px solid #e1e4ea; border-radius: 6px; }
#scrollTop { position: fixed; bottom: 30px; right: 30px; width: 48px; height: 48px; border-radius: 50%; background: #3f51b5; color: #fff; border: none; font-size: 22px; cursor: pointer; display: none; }
@media print { .filter-buttons, #scrollTop { display: none; } .scenario-card { display: block !important; } }
`

const pageScript = `
function filterScenarios(status, button) {
  document.querySelectorAll('.filter-btn').forEach(function (btn) { btn.classList.remove('active'); });
  if (button) { button.classList.add('active'); }
  document.querySelectorAll('.scenario-card').forEach(function (card) {
    card.style.display = (status === 'all' || card.dataset.status === status) ? 'block' : 'none';
  });
}
(function () {
  var btn = document.getElementById('scrollTop');
  window.addEventListener('scroll', function () {
    btn.style.display = window.scrollY > 300 ? 'block' : 'none';
  });
  btn.addEventListener('click', function () { window.scrollTo({ top: 0, behavior: 'smooth' }); });
})();
`
