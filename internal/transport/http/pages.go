package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var sitePageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>Discover Zimbabwe</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: #f7f4ee; color: #2d2a26; }
header { padding: 40px 20px; text-align: center; background: linear-gradient(135deg,#1f7a3a,#d4a017); color: #fff; }
main { max-width: 1080px; margin: 0 auto; padding: 20px; }
button { margin: 4px; padding: 8px 16px; border: none; border-radius: 4px; cursor: pointer; background: #1f7a3a; color: #fff; }
button.active { background: #d4a017; }
input, textarea, select { padding: 8px; margin: 4px 0; border: 1px solid #ccc; border-radius: 4px; width: 100%; box-sizing: border-box; }
.grid { display: grid; grid-template-columns: repeat(auto-fill,minmax(280px,1fr)); gap: 16px; }
.card { background: #fff; border-radius: 8px; padding: 16px; box-shadow: 0 4px 12px rgba(0,0,0,0.08); }
.card .image { font-size: 48px; }
.notice { padding: 10px; margin: 10px 0; border-radius: 4px; background: #fff3cd; display: none; }
section { margin: 32px 0; }
</style>
</head>
<body>
<header>
  <h1>Discover Zimbabwe</h1>
  <p>Falls, ruins, wildlife and lakes in one place.</p>
  <div id="session"></div>
</header>
<main>
  <div id="notice" class="notice"></div>
  <section>
    <input id="search" placeholder="Search destinations" oninput="loadDestinations()" />
    <div id="categories"></div>
    <div id="destinations" class="grid"></div>
  </section>
  <section id="detail" class="card" style="display:none"></section>
  <section class="card">
    <h2>Contact us</h2>
    <form onsubmit="return sendInquiry(event)">
      <input name="name" placeholder="Name" />
      <input name="email" placeholder="Email" />
      <textarea name="message" placeholder="Message"></textarea>
      <button type="submit">Send</button>
    </form>
  </section>
</main>
<script>
let category = 'All';
let session = null;
let favorites = [];

function notify(text) {
  const el = document.getElementById('notice');
  el.textContent = text;
  el.style.display = text ? 'block' : 'none';
}
async function api(method, path, body) {
  const res = await fetch(path, {
    method,
    headers: { 'Content-Type': 'application/json' },
    body: body === undefined ? undefined : JSON.stringify(body)
  });
  const data = await res.json();
  if (!res.ok) { notify(data.error || 'Request failed'); return null; }
  return data;
}
function renderSession() {
  const el = document.getElementById('session');
  if (session) {
    el.innerHTML = 'Welcome, <strong></strong> <button onclick="logout()">Logout</button>';
    el.querySelector('strong').textContent = session.name;
  } else {
    el.innerHTML = '<form onsubmit="return login(event)" style="max-width:320px;margin:auto">' +
      '<input name="email" placeholder="Email" /><input name="password" type="password" placeholder="Password" />' +
      '<button type="submit">Login</button></form>';
  }
}
async function login(event) {
  event.preventDefault();
  const form = Object.fromEntries(new FormData(event.target).entries());
  const data = await api('POST', '/api/v1/session/login', form);
  if (data) { session = data.session; notify(''); renderSession(); }
}
async function logout() {
  await api('POST', '/api/v1/session/logout');
  session = null;
  renderSession();
}
async function loadCategories() {
  const data = await api('GET', '/api/v1/categories');
  const el = document.getElementById('categories');
  el.innerHTML = '';
  for (const c of data.categories) {
    const b = document.createElement('button');
    b.textContent = c;
    if (c === category) b.className = 'active';
    b.onclick = () => { category = c; loadCategories(); loadDestinations(); };
    el.appendChild(b);
  }
}
async function loadDestinations() {
  const q = encodeURIComponent(document.getElementById('search').value);
  const data = await api('GET', '/api/v1/destinations?category=' + encodeURIComponent(category) + '&query=' + q);
  const fav = await api('GET', '/api/v1/favorites');
  favorites = fav ? fav.favorites : [];
  const el = document.getElementById('destinations');
  el.innerHTML = '';
  if (!data || data.destinations.length === 0) { el.textContent = 'No destinations found'; return; }
  for (const d of data.destinations) {
    const card = document.createElement('div');
    card.className = 'card';
    card.innerHTML = '<div class="image"></div><h3></h3><p class="loc"></p><p class="desc"></p><p class="meta"></p>';
    card.querySelector('.image').textContent = d.image;
    card.querySelector('h3').textContent = d.name;
    card.querySelector('.loc').textContent = d.location;
    card.querySelector('.desc').textContent = d.description;
    card.querySelector('.meta').textContent = d.rating + ' (' + d.reviews + ' reviews)';
    const fb = document.createElement('button');
    fb.textContent = favorites.includes(d.id) ? 'Unfavorite' : 'Favorite';
    fb.onclick = () => toggleFavorite(d.id);
    const vb = document.createElement('button');
    vb.textContent = 'View details';
    vb.onclick = () => showDetail(d.id);
    card.append(fb, vb);
    el.appendChild(card);
  }
}
async function toggleFavorite(id) {
  const data = await api('POST', '/api/v1/favorites/' + id + '/toggle');
  if (data) { notify(''); loadDestinations(); }
}
async function showDetail(id) {
  const data = await api('GET', '/api/v1/destinations/' + id);
  if (!data) return;
  const el = document.getElementById('detail');
  el.style.display = 'block';
  el.innerHTML = '<h2></h2><ul class="acts"></ul><h3>Reviews</h3><div class="reviews"></div>';
  el.querySelector('h2').textContent = data.destination.name;
  for (const a of data.destination.activities) {
    const li = document.createElement('li'); li.textContent = a; el.querySelector('.acts').appendChild(li);
  }
  const list = el.querySelector('.reviews');
  if (data.reviews.length === 0) list.textContent = 'No reviews yet';
  for (const r of data.reviews) {
    const p = document.createElement('p');
    p.textContent = r.user + ' (' + r.rating + '/5): ' + r.comment;
    list.appendChild(p);
  }
  if (session) {
    const form = document.createElement('form');
    form.innerHTML = '<select name="rating"><option value="">Rating</option><option>5</option><option>4</option><option>3</option><option>2</option><option>1</option></select>' +
      '<textarea name="comment" placeholder="Your review"></textarea><button type="submit">Submit review</button>';
    form.onsubmit = async (event) => {
      event.preventDefault();
      const body = Object.fromEntries(new FormData(form).entries());
      const res = await api('POST', '/api/v1/destinations/' + id + '/reviews', body);
      if (res) { notify(''); showDetail(id); }
    };
    el.appendChild(form);
  }
}
async function sendInquiry(event) {
  event.preventDefault();
  const body = Object.fromEntries(new FormData(event.target).entries());
  const data = await api('POST', '/api/v1/inquiries', body);
  if (data) {
    alert(data.message);
    if (data.clear_fields) event.target.reset();
  }
}
(async () => {
  const s = await api('GET', '/api/v1/session');
  session = s ? s.session : null;
  renderSession();
  loadCategories();
  loadDestinations();
})();
</script>
</body>
</html>`

func RegisterPages(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, sitePageHTML)
	})
}
