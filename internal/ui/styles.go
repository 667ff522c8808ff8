package ui

const styles = `
:root {
	--primary: #6366f1;
	--primary-dark: #4f46e5;
	--success: #10b981;
	--warning: #f59e0b;
	--danger: #ef4444;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.navbar {
	background: var(--primary);
	color: white;
	padding: 1rem 2rem;
	display: flex;
	justify-content: space-between;
	align-items: center;
}

.nav-brand { color: white; font-size: 1.5rem; font-weight: bold; text-decoration: none; }
.nav-links a { color: white; text-decoration: none; margin-left: 2rem; opacity: 0.9; }
.nav-links a:hover { opacity: 1; }

.container { max-width: 1320px; margin: 0 auto; padding: 2rem; }
.footer { text-align: center; padding: 2rem; color: var(--text-muted); border-top: 1px solid var(--border); }

h1 { margin-bottom: 1rem; }
h2 { margin-bottom: 1rem; font-size: 1.25rem; }

.card {
	background: var(--card-bg);
	border-radius: 12px;
	padding: 1.5rem;
	margin-bottom: 1.5rem;
	border: 1px solid var(--border);
}

.editor-grid { display: grid; grid-template-columns: minmax(360px, 1fr) 1.2fr; gap: 1.5rem; }
.two-col { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }

.banner { padding: 0.75rem 1rem; border-radius: 8px; margin-bottom: 1.5rem; font-weight: 500; }
.banner-success { background: #d1fae5; color: #065f46; }
.banner-error { background: #fee2e2; color: #991b1b; }

.form-group { margin-bottom: 1rem; }
.form-group label { display: block; margin-bottom: 0.35rem; font-weight: 500; }
.form-group input, .form-group select, .form-group textarea {
	width: 100%;
	padding: 0.6rem;
	border: 1px solid var(--border);
	border-radius: 8px;
	font-size: 1rem;
}
.form-group input:focus, .form-group select:focus, .form-group textarea:focus {
	outline: none;
	border-color: var(--primary);
	box-shadow: 0 0 0 3px rgba(99, 102, 241, 0.1);
}

.actions { display: flex; gap: 0.75rem; flex-wrap: wrap; align-items: center; }

button, .button-link {
	background: var(--primary);
	color: white;
	border: none;
	padding: 0.6rem 1.2rem;
	border-radius: 8px;
	cursor: pointer;
	font-size: 1rem;
	text-decoration: none;
	display: inline-block;
}
button:hover, .button-link:hover { background: var(--primary-dark); }
button.secondary, .button-link.secondary { background: var(--text-muted); }
button.danger { background: var(--danger); }
button.small { padding: 0.3rem 0.7rem; font-size: 0.85rem; }

.hint { color: var(--text-muted); font-style: italic; }
.muted { color: var(--text-muted); font-size: 0.875rem; }

table.templates { width: 100%; border-collapse: collapse; }
table.templates th {
	text-align: left;
	padding: 0.6rem;
	border-bottom: 2px solid var(--border);
	color: var(--text-muted);
	font-size: 0.875rem;
}
table.templates td { padding: 0.6rem; border-bottom: 1px solid var(--border); vertical-align: top; }
.row-actions { display: flex; gap: 0.5rem; flex-wrap: wrap; align-items: center; }
.row-actions form.inline { display: flex; gap: 0.25rem; }
.row-actions input { padding: 0.25rem 0.5rem; border: 1px solid var(--border); border-radius: 6px; }

.image-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 1rem; }
.image-item { border: 1px solid var(--border); border-radius: 8px; padding: 0.5rem; text-align: center; }
.image-item img { max-width: 100%; max-height: 120px; display: block; margin: 0 auto 0.5rem; }
.image-item code { display: block; font-size: 0.7rem; word-break: break-all; margin-bottom: 0.5rem; }

.event { font-weight: 600; font-size: 0.875rem; }
.event-sent { color: var(--success); }
.event-failed { color: var(--danger); }
.event-retry { color: var(--warning); }
.event-queued { color: var(--primary); }

@media (max-width: 900px) {
	.editor-grid, .two-col { grid-template-columns: 1fr; }
	.nav-links a { margin-left: 1rem; }
}
`
