package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home serves the check-in form and the mood chart. Presentation only; all
// data flows through the JSON API.
func (h *CheckinHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

const indexPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Wellness Check-in</title>
</head>
<body>
<h2>Daily Mood Check-in</h2>
<form id="checkin-form">
  Rating (1-5): <input name="rating" type="number" min="1" max="5" required><br>
  Note: <br><textarea name="note" rows="3" cols="40"></textarea><br>
  <button type="submit">Submit</button>
</form>
<div id="rec"></div>
<hr>
<canvas id="chart" width="600" height="200"></canvas>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<script>
async function loadChart(){
  const res = await fetch('/api/v1/checkins/series');
  const points = await res.json();
  const ctx = document.getElementById('chart').getContext('2d');
  new Chart(ctx, {
    type: 'line',
    data: {
      labels: points.map(p => p.date),
      datasets: [{label: 'Mood rating', data: points.map(p => p.rating), fill: false}]
    }
  });
}

document.getElementById('checkin-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const form = new FormData(e.target);
  const res = await fetch('/api/v1/checkins/submit', {method: 'POST', body: new URLSearchParams(form)});
  const rec = document.getElementById('rec');
  if (!res.ok) {
    rec.innerHTML = '<p>Something went wrong, please try again.</p>';
    return;
  }
  const data = await res.json();
  rec.innerHTML = '<h3>Thanks, saved!</h3><p>Recommendations:</p><ul>' +
    data.recommendations.map(t => '<li>' + t + '</li>').join('') + '</ul>';
  loadChart();
});

loadChart();
</script>
</body>
</html>`
