package site

// Asset is one static file the site serves under /static/.
type Asset struct {
	Body        string
	ContentType string
}

// Assets returns the static assets by filename. The build command
// writes these to disk; the server serves them from memory.
func Assets() map[string]Asset {
	return map[string]Asset{
		"style.css":     {Body: cssContent, ContentType: "text/css; charset=utf-8"},
		"theme.js":      {Body: themeJS, ContentType: "application/javascript; charset=utf-8"},
		"comments.js":   {Body: commentsJS, ContentType: "application/javascript; charset=utf-8"},
		"livereload.js": {Body: livereloadJS, ContentType: "application/javascript; charset=utf-8"},
	}
}

// cssContent is the site stylesheet.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --fg-muted: #636c76;
  --accent: #0969da;
  --border: #d1d9e0;
  --code-bg: #f6f8fa;
  --button-bg: #0969da;
  --button-fg: #ffffff;
}

[data-theme="dark"] {
  --bg: #0d1117;
  --fg: #e6edf3;
  --fg-muted: #8d96a0;
  --accent: #4493f8;
  --border: #30363d;
  --code-bg: #161b22;
  --button-bg: #1f6feb;
  --button-fg: #ffffff;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--fg);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  line-height: 1.6;
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Layout ============ */
.site-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  max-width: 46rem;
  margin: 0 auto;
  padding: 1rem;
  border-bottom: 1px solid var(--border);
}

.site-title { font-weight: 700; color: var(--fg); }

.site-header nav { display: flex; align-items: center; gap: 1rem; }

.content {
  max-width: 46rem;
  margin: 0 auto;
  padding: 1rem;
}

.site-footer {
  max-width: 46rem;
  margin: 0 auto;
  padding: 1rem;
  border-top: 1px solid var(--border);
  color: var(--fg-muted);
  font-size: 0.85rem;
}

/* ============ Theme toggle ============ */
.theme-toggle {
  background: none;
  border: none;
  color: var(--fg);
  cursor: pointer;
  padding: 0.25rem;
}

.theme-toggle .moon-icon { display: none; }
[data-theme="dark"] .theme-toggle .sun-icon { display: none; }
[data-theme="dark"] .theme-toggle .moon-icon { display: inline; }

/* ============ Entries ============ */
.entry-list { list-style: none; padding: 0; }
.entry-list li { margin-bottom: 0.5rem; }
.entry-date, .entry-updated { color: var(--fg-muted); font-size: 0.85rem; margin-left: 0.5rem; }

.tag {
  display: inline-block;
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 9999px;
  padding: 0 0.5rem;
  margin-left: 0.25rem;
  font-size: 0.75rem;
  color: var(--fg-muted);
}

.entry-content pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 0.75rem;
  overflow-x: auto;
}

.entry-content code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.9em; }

.entry-content blockquote {
  border-left: 3px solid var(--border);
  margin-left: 0;
  padding-left: 1rem;
  color: var(--fg-muted);
}

.entry-content table { border-collapse: collapse; }
.entry-content th, .entry-content td {
  border: 1px solid var(--border);
  padding: 0.35rem 0.75rem;
}

.entry-nav {
  display: flex;
  justify-content: space-between;
  margin: 2rem 0 1rem;
}

.pagination { display: flex; justify-content: space-between; margin-top: 1rem; }

/* ============ Comments ============ */
.comments { margin-top: 2rem; border-top: 1px solid var(--border); padding-top: 1rem; }

.comments-button {
  background: var(--button-bg);
  color: var(--button-fg);
  border: none;
  border-radius: 6px;
  padding: 0.5rem 1rem;
  font-size: 0.95rem;
  cursor: pointer;
}

/* ============ Error pages ============ */
.error-page { text-align: center; padding: 3rem 0; }
`

// themeJS toggles light/dark, persists the choice to localStorage, and
// mirrors it to the theme cookie so server renders match on the next
// request.
const themeJS = `(function() {
  "use strict";

  var html = document.documentElement;
  var toggle = document.getElementById("theme-toggle");

  function getStoredTheme() {
    try { return localStorage.getItem("theme"); } catch(e) { return null; }
  }

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("theme", theme); } catch(e) {}
  }

  var stored = getStoredTheme();
  if (stored) {
    setTheme(stored);
  } else if (!html.getAttribute("data-theme")) {
    if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
      setTheme("dark");
    } else {
      setTheme("light");
    }
  }

  if (toggle) {
    toggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      var next = current === "dark" ? "light" : "dark";
      setTheme(next);
      fetch("/theme", {
        method: "POST",
        headers: { "Content-Type": "application/x-www-form-urlencoded" },
        body: "theme=" + next
      }).catch(function() {});
    });
  }
})();
`

// commentsJS is the browser mirror of the comments.Controller state
// machine: one irreversible activation, triggered by the #commento
// fragment at load or by the first click on the trigger button.
const commentsJS = `(function() {
  "use strict";

  var ANCHOR = "commento";
  var activated = false;

  var section = document.querySelector(".comments");
  var button = document.getElementById("show-comments-button");

  function mount() {
    if (!section) return;
    var origin = section.getAttribute("data-commento-origin");
    if (!origin) return;
    var script = document.createElement("script");
    script.defer = true;
    script.src = origin + "/js/commento.js";
    script.setAttribute("data-auto-init", "false");
    script.onload = function() {
      if (window.commento && window.commento.main) { window.commento.main(); }
    };
    document.body.appendChild(script);
  }

  function activate() {
    if (activated) return;
    activated = true;
    mount();
    if (button && button.parentNode) {
      button.parentNode.removeChild(button);
    }
  }

  var fragment = window.location.hash.replace(/^#/, "");
  if (fragment === ANCHOR) {
    activate();
    var target = document.getElementById(ANCHOR);
    if (target && target.scrollIntoView) { target.scrollIntoView(); }
  } else if (button) {
    button.addEventListener("click", activate);
  }
})();
`

// livereloadJS reloads the page when the dev server reports a rebuild.
const livereloadJS = `(function() {
  "use strict";

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/livereload");
    ws.onmessage = function(ev) {
      if (ev.data === "reload") { location.reload(); }
    };
    ws.onclose = function() { setTimeout(connect, 2000); };
  }

  connect();
})();
`
